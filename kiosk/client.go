package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Wire types mirror the Order API payloads. Prices are cents.

type MenuItem struct {
	MenuID    uint   `json:"menu_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ExtraCost int64  `json:"extra_cost"`
	Calories  int    `json:"calories"`
}

type Container struct {
	ContainerID     uint   `json:"container_id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	NumberOfEntrees int    `json:"number_of_entrees"`
	NumberOfSides   int    `json:"number_of_sides"`
}

type createOrderReq struct {
	Time       string `json:"time"`
	Total      int64  `json:"total"`
	EmployeeID uint   `json:"employee_id"`
}

type orderRes struct {
	OrderID uint `json:"order_id"`
}

type createOrderItemReq struct {
	OrderID     uint `json:"order_id"`
	Quantity    int  `json:"quantity"`
	ContainerID uint `json:"container_id"`
}

type orderItemRes struct {
	OrderItemID uint `json:"order_item_id"`
}

type createMenuItemReq struct {
	OrderItemID uint `json:"order_item_id"`
	MenuID      uint `json:"menu_id"`
	Quantity    int  `json:"quantity"`
}

// Client is a typed HTTP client for the Order API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Menu(ctx context.Context) ([]MenuItem, error) {
	var out []MenuItem
	if err := c.getJSON(ctx, "/api/menu", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Containers(ctx context.Context) ([]Container, error) {
	var out []Container
	if err := c.getJSON(ctx, "/api/containers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, t time.Time, total int64, employeeID uint) (uint, error) {
	req := createOrderReq{Time: t.UTC().Format(time.RFC3339), Total: total, EmployeeID: employeeID}
	var out orderRes
	if err := c.postJSON(ctx, "/api/orders", req, &out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

func (c *Client) CreateOrderItem(ctx context.Context, orderID, containerID uint, quantity int) (uint, error) {
	req := createOrderItemReq{OrderID: orderID, Quantity: quantity, ContainerID: containerID}
	var out orderItemRes
	if err := c.postJSON(ctx, "/api/order-items", req, &out); err != nil {
		return 0, err
	}
	return out.OrderItemID, nil
}

func (c *Client) CreateMenuItemLink(ctx context.Context, orderItemID, menuID uint, quantity int) error {
	req := createMenuItemReq{OrderItemID: orderItemID, MenuID: menuID, Quantity: quantity}
	return c.postJSON(ctx, "/api/menu-items", req, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (%d)", req.Method, req.URL.Path, apiErr.Error, res.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
