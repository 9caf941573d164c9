package service_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/fvdberg/DCA-Planner-Backend/internal/testutil"
)

func TestDigestService_LogDuePlans(t *testing.T) {
	t.Run("logs each enabled plan due today", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDigestService(t, db)

		dueFund := testutil.NewFund().WithName("Due Fund").Build(t, db)
		laterFund := testutil.NewFund().WithName("Later Fund").Build(t, db)
		testutil.NewPlan(dueFund).WithFirstDate("2024-05-15").Build(t, db)
		testutil.NewPlan(laterFund).WithFirstDate("2024-06-15").Build(t, db)

		var buf bytes.Buffer
		orig := log.Writer()
		log.SetOutput(&buf)
		defer log.SetOutput(orig)

		if err := svc.LogDuePlans(); err != nil {
			t.Fatalf("LogDuePlans() returned unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Due Fund") {
			t.Errorf("Expected digest to mention the due plan, got: %s", out)
		}
		if strings.Contains(out, "Later Fund") {
			t.Errorf("Expected digest to skip plans due later, got: %s", out)
		}
	})

	t.Run("reports when nothing is due", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDigestService(t, db)

		var buf bytes.Buffer
		orig := log.Writer()
		log.SetOutput(&buf)
		defer log.SetOutput(orig)

		if err := svc.LogDuePlans(); err != nil {
			t.Fatalf("LogDuePlans() returned unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "no plans due") {
			t.Errorf("Expected an empty-digest log line, got: %s", buf.String())
		}
	})
}
