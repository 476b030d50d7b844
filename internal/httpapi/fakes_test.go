package httpapi

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/service"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

var (
	customerID = uuid.MustParse("6f1c2d0a-8c33-4a8e-9b1e-1f5b7f0c0a01")
	adminID    = uuid.MustParse("6f1c2d0a-8c33-4a8e-9b1e-1f5b7f0c0a02")
)

type fakeAuth struct {
	register func(domain.Registration) (service.Session, error)
	login    func(email, password string) (service.Session, error)
	profile  func(domain.Principal) (domain.User, error)
}

func (f *fakeAuth) Register(_ context.Context, reg domain.Registration) (service.Session, error) {
	return f.register(reg)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (service.Session, error) {
	return f.login(email, password)
}

func (f *fakeAuth) Authenticate(token string) (domain.Principal, error) {
	switch token {
	case customerToken:
		return domain.Principal{UserID: customerID, Role: domain.RoleCustomer}, nil
	case adminToken:
		return domain.Principal{UserID: adminID, Role: domain.RoleAdmin}, nil
	}
	return domain.Principal{}, errors.Join(domain.ErrUnauthorized, errors.New("token is malformed"))
}

func (f *fakeAuth) Profile(_ context.Context, p domain.Principal) (domain.User, error) {
	return f.profile(p)
}

func (f *fakeAuth) UpdateProfile(_ context.Context, p domain.Principal, _ domain.ProfileUpdate) (domain.User, error) {
	return f.profile(p)
}

type fakeCatalog struct {
	list       func(domain.ProductFilter) (domain.ProductPage, error)
	get        func(uuid.UUID) (domain.Product, error)
	create     func(domain.Product) (domain.Product, error)
	update     func(uuid.UUID, domain.ProductUpdate) (domain.Product, error)
	deactivate func(uuid.UUID) error
}

func (f *fakeCatalog) List(_ context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	return f.list(filter)
}

func (f *fakeCatalog) Get(_ context.Context, id uuid.UUID) (domain.Product, error) {
	return f.get(id)
}

func (f *fakeCatalog) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	return f.create(p)
}

func (f *fakeCatalog) Update(_ context.Context, id uuid.UUID, u domain.ProductUpdate) (domain.Product, error) {
	return f.update(id, u)
}

func (f *fakeCatalog) Deactivate(_ context.Context, id uuid.UUID) error {
	return f.deactivate(id)
}

type fakeCarts struct {
	getCart    func(domain.Principal) (service.CartView, error)
	addLine    func(domain.Principal, uuid.UUID, int) (domain.CartLine, error)
	updateLine func(domain.Principal, uuid.UUID, int) (domain.CartLine, error)
	removeLine func(domain.Principal, uuid.UUID) error
	clear      func(domain.Principal) error
}

func (f *fakeCarts) GetCart(_ context.Context, p domain.Principal) (service.CartView, error) {
	return f.getCart(p)
}

func (f *fakeCarts) AddLine(_ context.Context, p domain.Principal, productID uuid.UUID, qty int) (domain.CartLine, error) {
	return f.addLine(p, productID, qty)
}

func (f *fakeCarts) UpdateLine(_ context.Context, p domain.Principal, lineID uuid.UUID, qty int) (domain.CartLine, error) {
	return f.updateLine(p, lineID, qty)
}

func (f *fakeCarts) RemoveLine(_ context.Context, p domain.Principal, lineID uuid.UUID) error {
	return f.removeLine(p, lineID)
}

func (f *fakeCarts) Clear(_ context.Context, p domain.Principal) error {
	return f.clear(p)
}

type fakeOrders struct {
	checkout     func(domain.Principal, service.CheckoutRequest) (domain.Order, error)
	getOrder     func(domain.Principal, uuid.UUID) (domain.Order, error)
	listOrders   func(domain.Principal, domain.Page) (domain.OrderPage, error)
	cancel       func(domain.Principal, uuid.UUID) (domain.Order, error)
	updateStatus func(domain.Principal, uuid.UUID, domain.OrderUpdate) (domain.Order, error)
}

func (f *fakeOrders) Checkout(_ context.Context, p domain.Principal, req service.CheckoutRequest) (domain.Order, error) {
	return f.checkout(p, req)
}

func (f *fakeOrders) GetOrder(_ context.Context, p domain.Principal, id uuid.UUID) (domain.Order, error) {
	return f.getOrder(p, id)
}

func (f *fakeOrders) ListOrders(_ context.Context, p domain.Principal, page domain.Page) (domain.OrderPage, error) {
	return f.listOrders(p, page)
}

func (f *fakeOrders) Cancel(_ context.Context, p domain.Principal, id uuid.UUID) (domain.Order, error) {
	return f.cancel(p, id)
}

func (f *fakeOrders) UpdateStatus(_ context.Context, p domain.Principal, id uuid.UUID, u domain.OrderUpdate) (domain.Order, error) {
	return f.updateStatus(p, id, u)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
