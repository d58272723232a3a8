package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// cm3PerM3 converts box dimensions given in centimeters to cubic meters.
const cm3PerM3 = 1_000_000

// variantPayload is the catalog representation of a variant. Dimensions are in
// centimeters and weight is per piece.
type variantPayload struct {
	ID             string          `json:"id"`
	VariantID      string          `json:"variant_id"`
	BoxLength      float64         `json:"box_length_cm"`
	BoxWidth       float64         `json:"box_width_cm"`
	BoxHeight      float64         `json:"box_height_cm"`
	WeightPerPiece float64         `json:"weight_per_piece"`
	PiecesPerBox   int             `json:"pieces_per_box"`
	BoxPrice       decimal.Decimal `json:"box_price"`
	ThermalClass   string          `json:"thermal_class"`
	Frozen         *bool           `json:"frozen"`
}

func (p variantPayload) id() string {
	if p.VariantID != "" {
		return p.VariantID
	}
	return p.ID
}

// envelope matches responses that wrap the variant in a data field.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeVariant reads body as a single variant, an array of variants, or either
// of those wrapped in {"data": ...}, and returns the entry matching id.
func decodeVariant(body []byte, id string) (model.Variant, error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return model.Variant{}, fmt.Errorf("%w: empty body", ErrInvalidPayload)
	}

	if raw[0] == '{' {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && len(bytes.TrimSpace(env.Data)) > 0 {
			raw = bytes.TrimSpace(env.Data)
		}
	}

	var payloads []variantPayload
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &payloads); err != nil {
			return model.Variant{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
	case '{':
		var p variantPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return model.Variant{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		payloads = append(payloads, p)
	default:
		return model.Variant{}, fmt.Errorf("%w: expected object or array", ErrInvalidPayload)
	}

	p, ok := pick(payloads, id)
	if !ok {
		return model.Variant{}, fmt.Errorf("%w: %s", ErrVariantNotFound, id)
	}
	return toVariant(p, id)
}

// pick returns the entry whose id matches, or the only entry when it carries no id.
func pick(payloads []variantPayload, id string) (variantPayload, bool) {
	for _, p := range payloads {
		if p.id() == id {
			return p, true
		}
	}
	if len(payloads) == 1 && payloads[0].id() == "" {
		return payloads[0], true
	}
	return variantPayload{}, false
}

func toVariant(p variantPayload, id string) (model.Variant, error) {
	if !(p.BoxLength > 0 && p.BoxWidth > 0 && p.BoxHeight > 0) {
		return model.Variant{}, fmt.Errorf("%w: missing box dimensions for %s", ErrInvalidPayload, id)
	}
	if !(p.WeightPerPiece > 0) || p.PiecesPerBox < 1 {
		return model.Variant{}, fmt.Errorf("%w: missing box weight for %s", ErrInvalidPayload, id)
	}
	if p.BoxPrice.IsNegative() {
		return model.Variant{}, fmt.Errorf("%w: negative price for %s", ErrInvalidPayload, id)
	}

	return model.Variant{
		ID:              id,
		BoxVolume:       p.BoxLength * p.BoxWidth * p.BoxHeight / cm3PerM3,
		UnitGrossWeight: p.WeightPerPiece * float64(p.PiecesPerBox),
		BoxPrice:        p.BoxPrice,
		ThermalClass:    thermalClass(p),
	}, nil
}

// thermalClass prefers the explicit class and falls back to the frozen flag. An
// unknown class is passed through so the engine rejects it.
func thermalClass(p variantPayload) model.ThermalClass {
	if tc := strings.ToLower(strings.TrimSpace(p.ThermalClass)); tc != "" {
		return model.ThermalClass(tc)
	}
	if p.Frozen != nil && *p.Frozen {
		return model.ThermalFrozen
	}
	return model.ThermalAmbient
}
