package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"rentalku_backend/internals/features/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called during app bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Customer input helper
========================================================= */

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(p model.PaymentModel, cust CustomerInput, description string) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("invalid payment_amount")
	}
	if p.PaymentExternalOrderID == nil || *p.PaymentExternalOrderID == "" {
		return "", "", errors.New("payment_external_order_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *p.PaymentExternalOrderID,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			LName: cust.LastName,
			Email: cust.Email,
		},
	}

	name := description
	if name == "" {
		name = "Rent Payment"
	}
	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       *p.PaymentExternalOrderID,
			Price:    int64(p.PaymentAmount),
			Qty:      1,
			Name:     truncate(name, 50),
			Category: "Rent",
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
