package services

import (
	"errors"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
)

type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

func (s *AnalyticsService) LowStock(limit int) ([]repository.LowStockRow, error) {
	return s.Repo.LowStock(limit)
}

func (s *AnalyticsService) HighSalesEmployees(startDate, endDate string, limit int) ([]repository.EmployeeSalesRow, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.Repo.HighSalesEmployees(start, end, limit)
}

func (s *AnalyticsService) ItemSales(startDate, endDate string, limit int) ([]repository.ItemSalesRow, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.Repo.ItemSales(start, end, limit)
}

func (s *AnalyticsService) HourlySales(date string) ([]repository.HourlySalesRow, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.New("invalid date, want YYYY-MM-DD")
	}
	return s.Repo.HourlySales(date)
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, errors.New("startDate and endDate are required")
	}
	start, err := parseDay(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid startDate")
	}
	end, err := parseDay(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid endDate")
	}
	// an end date without a time component means end of that day
	if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
		end = end.Add(24*time.Hour - time.Second)
	}
	return start, end, nil
}

func parseDay(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
