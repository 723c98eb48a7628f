package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil || !isNew {
		t.Fatalf("Register: isNew=%v err=%v", isNew, err)
	}

	isNew, err = r.Register("a", 2)
	if err != nil || isNew {
		t.Fatalf("sobrescribir no es nuevo: isNew=%v err=%v", isNew, err)
	}

	if v, ok := r.Get("a"); !ok || v != 2 {
		t.Errorf("Get = %v, %v", v, ok)
	}
	if _, ok := r.Get("b"); ok {
		t.Error("un nombre no registrado no debe existir")
	}
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Fatal("el nombre vacío debe fallar")
	}
}

func TestGetOrCreateCreatesOnce(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := r.GetOrCreate("x", creator); err != nil || v != 7 {
				t.Errorf("GetOrCreate = %v, %v", v, err)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("el creador corrió %d veces, esperaba 1", calls)
	}
}

func TestGetOrCreatePropagatesError(t *testing.T) {
	r := NewRegistry[int]()
	boom := errors.New("boom")
	if _, err := r.GetOrCreate("x", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("el error del creador debe propagarse: %v", err)
	}
	if _, ok := r.Get("x"); ok {
		t.Error("un creador fallido no debe registrar nada")
	}
}

func TestUpdateAndClear(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("n", 1)

	if err := r.Update("n", func(v int) (int, error) { return v + 1, nil }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v, _ := r.Get("n"); v != 2 {
		t.Errorf("valor tras Update = %d", v)
	}

	deleted, err := r.Clear("n", nil)
	if err != nil || !deleted {
		t.Fatalf("Clear: deleted=%v err=%v", deleted, err)
	}
	if deleted, _ := r.Clear("n", nil); deleted {
		t.Error("limpiar dos veces no borra nada")
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("a", "1")
	_, _ = r.Register("b", "2")

	count, err := r.ClearAll(nil)
	if err != nil || count != 2 {
		t.Fatalf("ClearAll: count=%d err=%v", count, err)
	}
	if _, ok := r.Get("a"); ok {
		t.Error("el registro debe quedar vacío")
	}
}
