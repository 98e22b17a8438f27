package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/configs"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/kiosk"
)

// Interactive self-service kiosk running against the order server.
//
//	KIOSK_SERVER    base URL of the order API (default http://localhost:5001)
//	KIOSK_EMPLOYEE  employee id recorded on submitted orders (default 1)
func main() {
	cfg := configs.LoadConfig()

	server := os.Getenv("KIOSK_SERVER")
	if server == "" {
		server = "http://localhost:" + cfg.Port
	}
	employeeID := uint(1)
	if v := os.Getenv("KIOSK_EMPLOYEE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("invalid KIOSK_EMPLOYEE %q", v)
		}
		employeeID = uint(n)
	}

	ctx := context.Background()
	client := kiosk.NewClient(server)
	catalog, err := kiosk.LoadCatalog(ctx, client)
	if err != nil {
		log.Fatalf("load catalog from %s: %v", server, err)
	}

	notifier := kiosk.NotifierFunc(func(sev kiosk.Severity, msg string) {
		fmt.Printf("[%s] %s\n", sev, msg)
	})
	session := kiosk.NewSession(catalog, notifier)
	submitter := kiosk.NewSubmitter(client, catalog, cfg.TaxRate, employeeID)

	fmt.Printf("Kiosk session %s (server %s)\n", session.ID, server)
	in := bufio.NewScanner(os.Stdin)
	for {
		printPrompt(session)
		if !in.Scan() {
			return
		}
		input := strings.TrimSpace(in.Text())
		if input == "" {
			continue
		}
		cmd, arg := splitCommand(input)

		switch cmd {
		case "quit", "exit":
			return
		case "cart":
			printCart(session.Cart)
			continue
		case "back":
			if err := session.Back(); err != nil {
				fmt.Println("Nothing to go back to.")
			}
			continue
		case "remove":
			index, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("Usage: remove <line>")
				continue
			}
			session.RemoveLine(index)
			continue
		case "edit":
			index, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("Usage: edit <line>")
				continue
			}
			if err := session.EditLine(index); err != nil {
				fmt.Printf("Cannot edit line %d: %v\n", index, err)
			}
			continue
		case "checkout":
			orderID, err := submitter.Submit(ctx, session.Cart)
			if err != nil {
				fmt.Printf("Checkout failed: %v\nYour order is unchanged.\n", err)
				continue
			}
			fmt.Printf("Order #%d placed. Thank you!\n", orderID)
			continue
		}

		dispatch(session, input)
	}
}

// dispatch routes free-form input to the action the current step expects.
func dispatch(s *kiosk.Session, input string) {
	switch s.Step() {
	case kiosk.StepCategorySelection:
		s.SelectCategory(input)
	case kiosk.StepComboSelection:
		s.SelectCombo(input)
	case kiosk.StepSideSelection:
		if strings.EqualFold(input, "next") {
			s.Next()
			return
		}
		s.SelectSide(input)
	case kiosk.StepEntreeSelection:
		cmd, arg := splitCommand(input)
		switch cmd {
		case "done":
			s.CommitCombo()
		case "less":
			s.DecrementEntree(arg)
		default:
			s.IncrementEntree(input)
		}
	case kiosk.StepAppetizerSelection, kiosk.StepDrinkSelection:
		name, qty := input, 1
		if i := strings.LastIndex(input, " x"); i > 0 {
			if n, err := strconv.Atoi(input[i+2:]); err == nil && n > 0 {
				name, qty = strings.TrimSpace(input[:i]), n
			}
		}
		s.AddSimpleItem(name, qty)
	}
}

func printPrompt(s *kiosk.Session) {
	switch s.Step() {
	case kiosk.StepCategorySelection:
		fmt.Println("\nChoose a category: combos, appetizers, drinks")
	case kiosk.StepComboSelection:
		fmt.Println("\nChoose a combo:")
		for _, c := range s.Catalog.Combos {
			fmt.Printf("  %-14s %s (%d entrees)\n", c.Name, cents(c.Price), c.NumberOfEntrees)
		}
	case kiosk.StepSideSelection:
		fmt.Println("\nChoose a side, then type 'next':")
		for _, it := range s.Catalog.ItemsByType("Side") {
			fmt.Printf("  %s%s\n", it.Name, extra(it.ExtraCost))
		}
	case kiosk.StepEntreeSelection:
		combo, _, entrees := s.Selection()
		picked := 0
		for _, sel := range entrees {
			picked += sel.Quantity
		}
		fmt.Printf("\nChoose entrees (%d of %d), 'less <name>' to remove, 'done' to finish:\n",
			picked, combo.NumberOfEntrees)
		for _, it := range s.Catalog.ItemsByType("Entree") {
			fmt.Printf("  %s%s\n", it.Name, extra(it.ExtraCost))
		}
	case kiosk.StepAppetizerSelection:
		fmt.Println("\nChoose an appetizer (append ' x2' for quantity):")
		for _, it := range s.Catalog.ItemsByType("Appetizer") {
			fmt.Printf("  %s\n", it.Name)
		}
	case kiosk.StepDrinkSelection:
		fmt.Println("\nChoose a drink (append ' x2' for quantity):")
		for _, it := range s.Catalog.ItemsByType("Drink") {
			fmt.Printf("  %s\n", it.Name)
		}
	}
	fmt.Print("> ")
}

func printCart(cart *kiosk.Cart) {
	if cart.Len() == 0 {
		fmt.Println("Your order is empty.")
		return
	}
	for i, line := range cart.Lines() {
		switch line.Kind {
		case kiosk.KindCombo:
			fmt.Printf("%d. %s  %s\n", i, line.Container.Name, cents(line.Subtotal))
			if line.Side != nil {
				fmt.Printf("     side: %s\n", line.Side.Name)
			}
			for _, sel := range line.Entrees {
				fmt.Printf("     entree: %s x%d\n", sel.Item.Name, sel.Quantity)
			}
		default:
			fmt.Printf("%d. %s x%d  %s\n", i, line.Item.Name, line.Quantity, cents(line.Subtotal))
		}
	}
	fmt.Printf("Subtotal: %s\n", cents(cart.Total()))
}

func splitCommand(input string) (cmd, arg string) {
	parts := strings.SplitN(input, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func cents(v int64) string {
	return fmt.Sprintf("$%d.%02d", v/100, v%100)
}

func extra(v int64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf(" (+%s)", cents(v))
}
