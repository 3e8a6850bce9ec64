package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
)

func TestObserveVerdict(t *testing.T) {
	r := New()
	r.ObserveVerdict(evolution.Verdict{Valid: false, Reason: evolution.ReasonNoMoveSlot}, time.Millisecond)
	r.ObserveVerdict(evolution.Verdict{Valid: false, Reason: evolution.ReasonNoMoveSlot}, time.Millisecond)
	r.ObserveVerdict(evolution.Verdict{Valid: true, Reason: evolution.ReasonUnevolved}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.verdicts.WithLabelValues("no_move_slot", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.verdicts.WithLabelValues("unevolved", "true")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestContractViolationAndRequests(t *testing.T) {
	r := New()
	r.ContractViolation("branch")
	r.Request("/api/evolution/branch", http.StatusBadRequest)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.violations.WithLabelValues("branch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("/api/evolution/branch", "400")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	r := New()
	r.ContractViolation("branch")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "evocheck_contract_violations_total")
}
