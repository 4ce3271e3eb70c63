package moneyed

import (
	"encoding/json"
	"fmt"
)

// moneyDoc is the wire form for a single money value: the amount as a
// string so precision survives the round trip, and the currency code.
type moneyDoc struct {
	Amount   string `json:"a"`
	Currency string `json:"c"`
}

// MarshalJSON encodes the money as {"a": "<amount>", "c": "<CODE>"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyDoc{
		Amount:   m.amount.String(),
		Currency: m.currency.Code,
	})
}

// UnmarshalJSON decodes the {"a", "c"} wire form, resolving the currency
// code through the default registry.
func (m *Money) UnmarshalJSON(data []byte) error {
	var doc moneyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := NewFromString(doc.Amount, doc.Currency)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// multiMoneyMarker flags a JSON document as a MultiMoney rather than a
// plain object of money values.
const multiMoneyMarker = "mm"

// MarshalJSON encodes the aggregate as {"mm": true, "<CODE>": {"a", "c"}}
// with one entry per non-zero component.
func (mm MultiMoney) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(mm.moneys)+1)
	doc[multiMoneyMarker] = true
	for code, m := range mm.nonZero() {
		doc[code] = moneyDoc{Amount: m.Amount().String(), Currency: code}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the marked wire form, summing the decoded
// components per currency.
func (mm *MultiMoney) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	marker, ok := raw[multiMoneyMarker]
	if !ok {
		return fmt.Errorf("not a multimoney document: missing %q marker", multiMoneyMarker)
	}
	var flagged bool
	if err := json.Unmarshal(marker, &flagged); err != nil || !flagged {
		return fmt.Errorf("not a multimoney document: %q marker is not true", multiMoneyMarker)
	}

	moneys := make([]Money, 0, len(raw)-1)
	for key, entry := range raw {
		if key == multiMoneyMarker {
			continue
		}
		var m Money
		if err := m.UnmarshalJSON(entry); err != nil {
			return fmt.Errorf("decode %q entry: %w", key, err)
		}
		moneys = append(moneys, m)
	}
	*mm = NewMultiMoney(moneys...)
	return nil
}
