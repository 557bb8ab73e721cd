package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/schedule/weekly", "200", 0.25)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/schedule/weekly", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/bookings", "200", 0.1)
	RecordHTTPRequest("POST", "/bookings", "200", 0.2)
	RecordHTTPRequest("POST", "/bookings", "409", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "200"))
	rejectedCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "409"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), rejectedCount)
}

func TestRecordBookingAction(t *testing.T) {
	BookingActionsTotal.Reset()

	RecordBookingAction("book", "success")
	RecordBookingAction("book", "rejected")
	RecordBookingAction("cancel", "success")

	bookSuccess := testutil.ToFloat64(BookingActionsTotal.WithLabelValues("book", "success"))
	bookRejected := testutil.ToFloat64(BookingActionsTotal.WithLabelValues("book", "rejected"))
	cancelSuccess := testutil.ToFloat64(BookingActionsTotal.WithLabelValues("cancel", "success"))

	assert.Equal(t, float64(1), bookSuccess)
	assert.Equal(t, float64(1), bookRejected)
	assert.Equal(t, float64(1), cancelSuccess)
}

func TestRecordRollbackRefresh(t *testing.T) {
	before := testutil.ToFloat64(RollbackRefreshesTotal)

	RecordRollbackRefresh()
	RecordRollbackRefresh()

	assert.Equal(t, before+2, testutil.ToFloat64(RollbackRefreshesTotal))
}
