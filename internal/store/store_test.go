package store_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"moneyflow/internal/models"
	"moneyflow/internal/registry"
	"moneyflow/internal/store"
	"moneyflow/internal/testutil"
)

func TestAdd(t *testing.T) {
	t.Run("assigns_distinct_ids", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		const n = 25
		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			tx := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(1000, "2024-03-01"))
			if tx.ID == "" {
				t.Fatal("expected non-empty transaction ID")
			}
			if seen[tx.ID] {
				t.Fatalf("duplicate transaction ID %q", tx.ID)
			}
			seen[tx.ID] = true
		}

		if got := len(s.List()); got != n {
			t.Errorf("expected %d transactions, got %d", n, got)
		}
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		first := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-10"))
		second := testutil.CreateTestTransaction(t, s, testutil.ExpenseFields(2000, "2024-03-05"))

		txs := s.List()
		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txs))
		}
		if txs[0].ID != first.ID || txs[1].ID != second.ID {
			t.Error("expected insertion order, not date order")
		}
	})

	t.Run("persists_on_every_add", func(t *testing.T) {
		s, backend := testutil.SetupTestStore(t)

		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(1000, "2024-03-01"))
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(2000, "2024-03-02"))

		if backend.Writes != 2 {
			t.Errorf("expected 2 write-throughs, got %d", backend.Writes)
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		fields := testutil.IncomeFields(1000, "2024-03-01")
		fields.Category = "yachts"
		_, err := s.Add(fields)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("category_type_mismatch", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		// rent is an expense category
		fields := testutil.IncomeFields(1000, "2024-03-01")
		fields.Category = "rent"
		_, err := s.Add(fields)
		testutil.AssertAppError(t, err, "CATEGORY_TYPE_MISMATCH")
	})

	t.Run("invalid_type", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		fields := testutil.IncomeFields(1000, "2024-03-01")
		fields.Type = "transfer"
		_, err := s.Add(fields)
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("rolls_back_on_persist_failure", func(t *testing.T) {
		s, backend := testutil.SetupTestStore(t)

		backend.FailWrite = true
		_, err := s.Add(testutil.IncomeFields(1000, "2024-03-01"))
		testutil.AssertAppError(t, err, "STORAGE_ERROR")

		if got := len(s.List()); got != 0 {
			t.Errorf("expected collection unchanged after failed persist, got %d records", got)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces_fields_preserves_id", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		created := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-01"))

		updated, err := s.Update(created.ID, models.TransactionFields{
			Amount:   750,
			Type:     models.TransactionTypeExpense,
			Category: "groceries",
			Date:     "2024-03-15",
			Notes:    "weekly shop",
		})
		testutil.AssertNoError(t, err)

		if updated.ID != created.ID {
			t.Errorf("expected id %q preserved, got %q", created.ID, updated.ID)
		}
		got, err := s.Get(created.ID)
		testutil.AssertNoError(t, err)
		if got.Amount != 750 || got.Type != models.TransactionTypeExpense ||
			got.Category != "groceries" || got.Date != "2024-03-15" || got.Notes != "weekly shop" {
			t.Errorf("unexpected record after update: %+v", got)
		}
	})

	t.Run("nonexistent_id", func(t *testing.T) {
		s, backend := testutil.SetupTestStore(t)
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-01"))
		before := backend.Writes

		_, err := s.Update("no-such-id", testutil.IncomeFields(1, "2024-03-02"))
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		if backend.Writes != before {
			t.Error("expected no persist for a failed update")
		}
		if got := len(s.List()); got != 1 {
			t.Errorf("expected collection unchanged, got %d records", got)
		}
	})

	t.Run("rolls_back_on_persist_failure", func(t *testing.T) {
		s, backend := testutil.SetupTestStore(t)
		created := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-01"))

		backend.FailWrite = true
		_, err := s.Update(created.ID, testutil.IncomeFields(9999, "2024-03-02"))
		testutil.AssertAppError(t, err, "STORAGE_ERROR")

		got, getErr := s.Get(created.ID)
		testutil.AssertNoError(t, getErr)
		if got.Amount != 5000 || got.Date != "2024-03-01" {
			t.Errorf("expected original record after failed persist, got %+v", got)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes_record", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		a := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(1000, "2024-03-01"))
		b := testutil.CreateTestTransaction(t, s, testutil.ExpenseFields(2000, "2024-03-02"))
		c := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(3000, "2024-03-03"))

		testutil.AssertNoError(t, s.Delete(b.ID))

		txs := s.List()
		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txs))
		}
		if txs[0].ID != a.ID || txs[1].ID != c.ID {
			t.Error("expected remaining records in insertion order")
		}
		if _, err := s.Get(b.ID); err == nil {
			t.Error("expected deleted record to be gone")
		}
	})

	t.Run("nonexistent_id", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		err := s.Delete("no-such-id")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("rolls_back_on_persist_failure", func(t *testing.T) {
		s, backend := testutil.SetupTestStore(t)
		a := testutil.CreateTestTransaction(t, s, testutil.IncomeFields(1000, "2024-03-01"))
		b := testutil.CreateTestTransaction(t, s, testutil.ExpenseFields(2000, "2024-03-02"))

		backend.FailWrite = true
		err := s.Delete(a.ID)
		testutil.AssertAppError(t, err, "STORAGE_ERROR")

		txs := s.List()
		if len(txs) != 2 || txs[0].ID != a.ID || txs[1].ID != b.ID {
			t.Errorf("expected collection restored after failed persist, got %+v", txs)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		s, backend := testutil.SetupTestStore(t)
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(5000, "2024-03-01"))
		testutil.CreateTestTransaction(t, s, testutil.ExpenseFields(2000, "2024-03-05"))

		reloaded, err := store.New(backend, registry.NewDefault())
		testutil.AssertNoError(t, err)

		want := s.List()
		got := reloaded.List()
		if len(got) != len(want) {
			t.Fatalf("expected %d transactions after reload, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("record %d differs after reload: got %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("empty_backend", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)

		if got := len(s.List()); got != 0 {
			t.Errorf("expected empty collection, got %d records", got)
		}
	})

	t.Run("legacy_bare_array", func(t *testing.T) {
		backend := testutil.NewMemoryBackend()
		legacy := []models.Transaction{
			{ID: "legacy-1", Amount: 4200, Type: models.TransactionTypeIncome, Category: "salary", Date: "2024-02-29"},
		}
		data, err := json.Marshal(legacy)
		testutil.AssertNoError(t, err)
		backend.Seed(data)

		s, err := store.New(backend, registry.NewDefault())
		testutil.AssertNoError(t, err)

		txs := s.List()
		if len(txs) != 1 || txs[0].ID != "legacy-1" {
			t.Fatalf("expected legacy record loaded, got %+v", txs)
		}
	})

	t.Run("corrupt_blob_fails_closed", func(t *testing.T) {
		backend := testutil.NewMemoryBackend()
		backend.Seed([]byte("{not json"))

		s, err := store.New(backend, registry.NewDefault())
		testutil.AssertNoError(t, err)

		if got := len(s.List()); got != 0 {
			t.Errorf("expected empty collection from corrupt blob, got %d records", got)
		}
	})

	t.Run("unsupported_version_fails_closed", func(t *testing.T) {
		backend := testutil.NewMemoryBackend()
		backend.Seed([]byte(`{"version":99,"transactions":[{"id":"x","amount":1,"type":"income","category":"salary","date":"2024-01-01"}]}`))

		s, err := store.New(backend, registry.NewDefault())
		testutil.AssertNoError(t, err)

		if got := len(s.List()); got != 0 {
			t.Errorf("expected empty collection from unsupported version, got %d records", got)
		}
	})

	t.Run("duplicate_ids_dropped", func(t *testing.T) {
		backend := testutil.NewMemoryBackend()
		blob := fmt.Sprintf(`{"version":1,"transactions":[%s,%s]}`,
			`{"id":"dup","amount":100,"type":"income","category":"salary","date":"2024-01-01"}`,
			`{"id":"dup","amount":200,"type":"income","category":"salary","date":"2024-01-02"}`)
		backend.Seed([]byte(blob))

		s, err := store.New(backend, registry.NewDefault())
		testutil.AssertNoError(t, err)

		txs := s.List()
		if len(txs) != 1 {
			t.Fatalf("expected 1 record after dropping duplicate id, got %d", len(txs))
		}
		if txs[0].Amount != 100 {
			t.Error("expected first occurrence to win")
		}
	})
}

func TestList(t *testing.T) {
	t.Run("returns_copy", func(t *testing.T) {
		s, _ := testutil.SetupTestStore(t)
		testutil.CreateTestTransaction(t, s, testutil.IncomeFields(1000, "2024-03-01"))

		txs := s.List()
		txs[0].Amount = 999999

		fresh := s.List()
		if fresh[0].Amount != 1000 {
			t.Error("mutating a snapshot must not affect the store")
		}
	})
}
