package request

import (
	"testing"

	"gcpanel_ledger/internal/domain/entities"
)

func TestRecordCostEntryRequest_ResolveSourceKind(t *testing.T) {
	r := RecordCostEntryRequest{SourceKind: "labor"}
	if got := r.ResolveSourceKind(); got != entities.CostSourceLabor {
		t.Fatalf("expected labor, got %q", got)
	}

	r2 := RecordCostEntryRequest{SourceKind: "payroll"}
	if got := r2.ResolveSourceKind(); entities.ValidCostSourceKind(got) {
		t.Fatalf("expected invalid kind, got %q", got)
	}
}
