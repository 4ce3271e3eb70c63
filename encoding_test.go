package moneyed

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMoneyMarshalJSON(t *testing.T) {
	m := MustFromString("1000000", "USD")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if got, want := string(data), `{"a":"1000000","c":"USD"}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	m := MustFromString("1234.56", "EUR")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("round trip = %v, want %v", back, m)
	}
	if back.Currency().Name != m.Currency().Name {
		t.Errorf("round trip lost the registry record for %s", m.Currency().Code)
	}
}

func TestMoneyUnmarshalUnknownCurrency(t *testing.T) {
	var m Money
	err := json.Unmarshal([]byte(`{"a":"1","c":"QQQ"}`), &m)
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Unmarshal error = %v, want ErrUnknownCurrency", err)
	}
}

func TestMultiMoneyMarshalJSON(t *testing.T) {
	mm := mixedFortune()

	data, err := json.Marshal(mm)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"BTC":{"a":"1000","c":"BTC"},"USD":{"a":"1000000","c":"USD"},"mm":true}`
	if got := string(data); got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestMultiMoneyMarshalDropsZeroEntries(t *testing.T) {
	mm := NewMultiMoney(MustFromString("5", "USD"), Zero(MustLookup("EUR")))

	data, err := json.Marshal(mm)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"USD":{"a":"5","c":"USD"},"mm":true}`
	if got := string(data); got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestMultiMoneyRoundTrip(t *testing.T) {
	mm := mixedFortune()

	data, err := json.Marshal(mm)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back MultiMoney
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !back.Equal(mm) {
		t.Errorf("round trip = %v, want %v", back, mm)
	}
}

func TestMultiMoneyUnmarshalRequiresMarker(t *testing.T) {
	var mm MultiMoney
	err := json.Unmarshal([]byte(`{"USD":{"a":"5","c":"USD"}}`), &mm)
	if err == nil {
		t.Error("Unmarshal without marker succeeded, want error")
	}
}
