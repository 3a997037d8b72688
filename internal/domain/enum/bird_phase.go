package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BirdPhase represents the growth phase a feed formula targets
type BirdPhase int

const (
	BirdPhaseCria    BirdPhase = 0
	BirdPhaseRecria  BirdPhase = 1
	BirdPhasePostura BirdPhase = 2
)

func (p BirdPhase) String() string {
	return [...]string{"Cria", "Recria", "Postura"}[p]
}

func (p BirdPhase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *BirdPhase) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = BirdPhase(i)
		return nil
	}
	switch str {
	case "Cria":
		*p = BirdPhaseCria
	case "Recria":
		*p = BirdPhaseRecria
	case "Postura":
		*p = BirdPhasePostura
	}
	return nil
}

func (p BirdPhase) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *BirdPhase) Scan(value interface{}) error {
	if value == nil {
		*p = BirdPhaseCria
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = BirdPhase(v)
	case int:
		*p = BirdPhase(v)
	}
	return nil
}
