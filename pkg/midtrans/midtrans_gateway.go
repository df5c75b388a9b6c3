package midtrans

import (
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentGateway is the subset of Midtrans used for settlement payments.
type PaymentGateway interface {
	CreateTransaction(req *snap.Request) (*snap.Response, error)
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error)
}

type midtransGateway struct {
	snapClient snap.Client
	coreClient coreapi.Client
}

func NewPaymentGateway(serverKey string, isProduction bool) PaymentGateway {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(serverKey, env)

	var c coreapi.Client
	c.New(serverKey, env)

	return &midtransGateway{
		snapClient: s,
		coreClient: c,
	}
}

func (g *midtransGateway) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	resp, mErr := g.snapClient.CreateTransaction(req)
	if mErr != nil {
		return nil, mErr
	}
	return resp, nil
}

func (g *midtransGateway) CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error) {
	resp, mErr := g.coreClient.CheckTransaction(orderID)
	if mErr != nil {
		return nil, mErr
	}
	return resp, nil
}
