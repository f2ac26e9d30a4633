package leave

import (
	"testing"

	"github.com/workdocs/leave-engine-go/internal/pkg/validator"
)

func validCreateRequest() CreateRequestRequest {
	return CreateRequestRequest{
		EmployeeID: "8f14e45f-ceea-4e7a-9a3c-1c2d3e4f5a6b",
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-07",
		LeaveType:  "annual",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	return errs.ToMap()
}

func TestCreateRequestValidateOK(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestCreateRequestValidateFields(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*CreateRequestRequest)
		wantField string
	}{
		{
			name:      "missing employee",
			mutate:    func(r *CreateRequestRequest) { r.EmployeeID = "" },
			wantField: "employee_id",
		},
		{
			name:      "bad start date",
			mutate:    func(r *CreateRequestRequest) { r.StartDate = "03-06-2024" },
			wantField: "start_date",
		},
		{
			name:      "start after end",
			mutate:    func(r *CreateRequestRequest) { r.StartDate = "2024-06-10" },
			wantField: "start_date",
		},
		{
			name:      "unknown leave type",
			mutate:    func(r *CreateRequestRequest) { r.LeaveType = "sabbatical" },
			wantField: "leave_type",
		},
		{
			name: "duplicate excluded date",
			mutate: func(r *CreateRequestRequest) {
				r.ExcludedDates = []ExcludedDateInput{
					{Date: "2024-06-05", Reason: "working_saturday"},
					{Date: "2024-06-05", Reason: "working_saturday"},
				}
			},
			wantField: "excluded_dates[1].date",
		},
		{
			name: "unknown exclusion reason",
			mutate: func(r *CreateRequestRequest) {
				r.ExcludedDates = []ExcludedDateInput{
					{Date: "2024-06-05", Reason: "holiday"},
				}
			},
			wantField: "excluded_dates[0].reason",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)
			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if _, ok := fieldErrors(t, err)[c.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", c.wantField, err)
			}
		})
	}
}

func TestCreateRequestWeekdayExclusionNeedsJustification(t *testing.T) {
	req := validCreateRequest()
	req.ExcludedDates = []ExcludedDateInput{
		{Date: "2024-06-05", Reason: "non_working_weekday"},
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing justification")
	}
	if _, ok := fieldErrors(t, err)["reason"]; !ok {
		t.Errorf("expected error on reason field, got %v", err)
	}

	req.Reason = "office closed for renovation"
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request with justification, got %v", err)
	}

	// Whitespace padding does not satisfy the minimum.
	req.Reason = "   ok    "
	if err := req.Validate(); err == nil {
		t.Error("expected padded short reason to be rejected")
	}
}

func TestSaturdayExclusionNeedsNoJustification(t *testing.T) {
	req := validCreateRequest()
	req.EndDate = "2024-06-08"
	req.ExcludedDates = []ExcludedDateInput{
		{Date: "2024-06-08", Reason: "non_working_saturday"},
	}

	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestCarryOverRequestValidate(t *testing.T) {
	req := CarryOverRequest{
		EmployeeID: "8f14e45f-ceea-4e7a-9a3c-1c2d3e4f5a6b",
		FromYear:   2024,
		ToYear:     2025,
	}
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	req.ToYear = 2024
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation error for same-year carry-over")
	}
	if _, ok := fieldErrors(t, err)["to_year"]; !ok {
		t.Errorf("expected error on to_year, got %v", err)
	}
}

func TestEntitlementBalance(t *testing.T) {
	ent := Entitlement{
		TotalDays:            20,
		CarriedOverDays:      5,
		ManualAdjustmentDays: -2,
		UsedDays:             7,
	}
	if got := ent.Balance(); got != 16 {
		t.Errorf("Balance() = %d, want 16", got)
	}

	// The ledger itself never caps: a heavy debit goes negative.
	ent.UsedDays = 30
	if got := ent.Balance(); got != -7 {
		t.Errorf("Balance() = %d, want -7", got)
	}
}
