package main

import (
	"github.com/shopspring/decimal"

	"github.com/rl1809/stockledger/internal/adapter/storage"
)

const (
	demoUserID    int64 = 1
	demoPizzaID   int64 = 1
	demoCalzoneID int64 = 2
)

// seedDemo loads a small pizzeria so the in-memory server is usable.
func seedDemo(store *storage.MemoryStore) error {
	store.AddUser(demoUserID)

	materials := []struct {
		name, unit, qty string
	}{
		{"Dough", "pcs", "50"},
		{"Tomato Sauce", "l", "10.0"},
		{"Cheese", "kg", "5.0"},
		{"Basil", "kg", "0.5"},
	}
	ids := make(map[string]int64, len(materials))
	for _, m := range materials {
		id, err := store.AddMaterial(m.name, m.unit, decimal.RequireFromString(m.qty))
		if err != nil {
			return err
		}
		ids[m.name] = id
	}

	recipes := []struct {
		item     int64
		material string
		perUnit  string
	}{
		{demoPizzaID, "Dough", "1"},
		{demoPizzaID, "Tomato Sauce", "0.15"},
		{demoPizzaID, "Cheese", "0.2"},
		{demoPizzaID, "Basil", "0.01"},
		{demoCalzoneID, "Dough", "1"},
		{demoCalzoneID, "Cheese", "0.3"},
	}
	for _, r := range recipes {
		if _, err := store.AddRecipeLine(r.item, ids[r.material], decimal.RequireFromString(r.perUnit)); err != nil {
			return err
		}
	}
	return nil
}
