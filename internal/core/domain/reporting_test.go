package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.RevenueCategory
	}{
		{"room", domain.CategoryRoom},
		{"Room", domain.CategoryRoom},
		{"  FOOD  ", domain.CategoryFood},
		{"beverage", domain.CategoryBeverage},
		{"minibar", domain.CategoryMinibar},
		{"giftshop", domain.CategoryMisc},
		{"", domain.CategoryMisc},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CategoryOf(tt.raw))
		})
	}
}

func TestDepartmentOf(t *testing.T) {
	tests := []struct {
		category domain.RevenueCategory
		want     domain.Department
	}{
		{domain.CategoryRoom, domain.DeptRooms},
		{domain.CategoryFood, domain.DeptFB},
		{domain.CategoryBeverage, domain.DeptFB},
		{domain.CategoryMinibar, domain.DeptFB},
		{domain.CategorySpa, domain.DeptSpa},
		{domain.CategoryLaundry, domain.DeptOther},
		{domain.CategoryMisc, domain.DeptOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DepartmentOf(tt.category))
		})
	}
}

func TestPaymentMethodOf(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.PaymentMethod
	}{
		{"card", domain.PayCard},
		{"CARD", domain.PayCard},
		{"bank", domain.PayBank},
		{"voucher", domain.PayVoucher},
		{"cash", domain.PayCash},
		{"something else", domain.PayCash},
		{"", domain.PayCash},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PaymentMethodOf(tt.raw))
		})
	}
}
