package player

import "fmt"

// Player is a single row of the scraped Champions League player table.
// Statistic columns are nullable in the store, so they are pointers here.
type Player struct {
	Index       int      `json:"index" validate:"required,min=1"`
	Name        string   `json:"name" validate:"required,max=255"`
	Nation      string   `json:"nation" validate:"max=64"`
	Position    string   `json:"position" validate:"max=32"`
	Age         *int     `json:"age" validate:"omitempty,min=0,max=100"`
	MP          *int     `json:"mp"`
	Starts      *int     `json:"starts"`
	Min         *int     `json:"min"`
	Nineties    *float64 `json:"nineties"`
	Goals       *int     `json:"goals"`
	Assists     *int     `json:"assists"`
	GPlusA      *int     `json:"gPlusA"`
	GMinusPK    *int     `json:"gMinusPk"`
	PK          *int     `json:"pk"`
	PKAtt       *int     `json:"pkatt"`
	CrdY        *int     `json:"crdY"`
	CrdR        *int     `json:"crdR"`
	XG          *float64 `json:"xg"`
	NPXG        *float64 `json:"npxg"`
	XAG         *float64 `json:"xag"`
	NPXGPlusXAG *float64 `json:"npxgPlusXag"`
	PrgC        *float64 `json:"prgC"`
	PrgP        *float64 `json:"prgP"`
	PrgR        *float64 `json:"prgR"`
	Team        string   `json:"team" validate:"max=100"`
}

// AgeValue returns the age or zero when unknown.
func (p Player) AgeValue() int {
	if p.Age == nil {
		return 0
	}
	return *p.Age
}

func (p Player) Validate() error {
	if p.Index <= 0 {
		return fmt.Errorf("player index must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
