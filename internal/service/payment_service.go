package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// paymentSuccessRate is the fixed probability of a simulated payment
// succeeding.
const paymentSuccessRate = 0.9

// ErrPaymentDeclined is returned when the simulated payment gate declines.
var ErrPaymentDeclined = errors.New("payment declined")

// PaymentService simulates a payment gateway check. It carries no business
// logic: the result only gates the cosmetic premium flag.
type PaymentService interface {
	PaySucceeds(amountCents int64) bool
}

type paymentService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPaymentService builds a PaymentService with a time-seeded source.
func NewPaymentService() PaymentService {
	return NewPaymentServiceWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewPaymentServiceWithSource builds a PaymentService with the given source.
// Tests pass a fixed seed to make outcomes deterministic.
func NewPaymentServiceWithSource(src rand.Source) PaymentService {
	return &paymentService{rnd: rand.New(src)}
}

// PaySucceeds reports whether a charge for amountCents went through.
// Succeeds with fixed probability; non-positive amounts always fail.
func (s *paymentService) PaySucceeds(amountCents int64) bool {
	if amountCents <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < paymentSuccessRate
}
