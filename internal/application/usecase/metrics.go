package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "micuenta_payments_recorded_total",
		Help: "Number of payment confirmations successfully allocated.",
	})

	debtAllocations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "micuenta_debt_allocations_total",
		Help: "Number of per-debt ledger entries created by allocations.",
	})

	surplusDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "micuenta_payment_surplus_discarded_total",
		Help: "Total monetary amount discarded because payments exceeded the outstanding debt.",
	})

	allocationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "micuenta_allocation_failures_total",
		Help: "Number of rejected payment confirmations by failure reason.",
	}, []string{"reason"})
)
