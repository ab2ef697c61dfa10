package services_test

import (
	"testing"
	"time"

	"aquaflow/internal/core/domain/model/delivery"
	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/core/domain/model/order"
	"aquaflow/internal/core/domain/model/staff"
	"aquaflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T) services.DeliveryScheduler {
	t.Helper()
	s, err := services.NewDeliveryScheduler(services.DefaultSchedulingPolicy())
	require.NoError(t, err)
	return s
}

func newOrderWithPackages(t *testing.T, quantity int) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(150)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Agua 625ml", quantity, price)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Av. Los Alamos 742")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), addr, []order.Line{line}, "", time.Now())
	require.NoError(t, err)
	return o
}

func newCourier(t *testing.T) *staff.Employee {
	t.Helper()
	e, err := staff.NewEmployee(kernel.NewUUID(), "Jorge Mamani", "")
	require.NoError(t, err)
	return e
}

func TestDeliveryScheduler_DepartureLead(t *testing.T) {
	s := newScheduler(t)

	assert.Equal(t, 30*time.Minute, s.DepartureLead(19))
	assert.Equal(t, 15*time.Minute, s.DepartureLead(20))
	assert.Equal(t, 15*time.Minute, s.DepartureLead(55))
}

func TestDeliveryScheduler_Schedule(t *testing.T) {
	t.Run("large_batch_departs_in_fifteen_minutes", func(t *testing.T) {
		s := newScheduler(t)
		o := newOrderWithPackages(t, 20)
		courier := newCourier(t)
		now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		travelTime := 25 * time.Minute

		trip, err := s.Schedule(o, courier, travelTime, now)

		require.NoError(t, err)
		assert.Equal(t, now.Add(15*time.Minute), trip.DepartureAt())
		assert.Equal(t, now.Add(40*time.Minute), trip.EstimatedArrival())
		assert.Equal(t, delivery.EnRoute, trip.Status())
		assert.True(t, trip.OrderID().IsEqual(o.ID()))
		assert.True(t, trip.CourierID().IsEqual(courier.ID()))
		assert.False(t, courier.IsAvailable())
	})

	t.Run("small_order_departs_in_thirty_minutes", func(t *testing.T) {
		s := newScheduler(t)
		o := newOrderWithPackages(t, 5)
		courier := newCourier(t)
		now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

		trip, err := s.Schedule(o, courier, 10*time.Minute, now)

		require.NoError(t, err)
		assert.Equal(t, now.Add(30*time.Minute), trip.DepartureAt())
		assert.Equal(t, now.Add(40*time.Minute), trip.EstimatedArrival())
	})

	t.Run("unavailable_courier_rejected", func(t *testing.T) {
		s := newScheduler(t)
		o := newOrderWithPackages(t, 5)
		courier := newCourier(t)
		courier.MarkUnavailable()

		_, err := s.Schedule(o, courier, 10*time.Minute, time.Now())

		require.ErrorIs(t, err, services.ErrCourierUnavailable)
	})

	t.Run("negative_travel_time_rejected", func(t *testing.T) {
		s := newScheduler(t)
		o := newOrderWithPackages(t, 5)
		courier := newCourier(t)

		_, err := s.Schedule(o, courier, -time.Minute, time.Now())

		require.Error(t, err)
		assert.True(t, courier.IsAvailable(), "courier must stay available on failure")
	})
}

func TestNewDeliveryScheduler_PolicyValidation(t *testing.T) {
	_, err := services.NewDeliveryScheduler(services.SchedulingPolicy{
		LargeBatchThreshold: 0,
		LargeBatchLead:      15 * time.Minute,
		StandardLead:        30 * time.Minute,
	})
	require.Error(t, err)

	_, err = services.NewDeliveryScheduler(services.SchedulingPolicy{
		LargeBatchThreshold: 20,
		LargeBatchLead:      15 * time.Minute,
	})
	require.Error(t, err)
}
