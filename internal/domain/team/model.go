package team

import "fmt"

// Team is a row of the league standing table, keyed by squad name.
type Team struct {
	Rank     *int     `json:"rk"`
	Name     string   `json:"name" validate:"required"`
	MP       *int     `json:"mp"`
	W        *int     `json:"w"`
	D        *int     `json:"d"`
	L        *int     `json:"l"`
	GF       *int     `json:"gf"`
	GA       *int     `json:"ga"`
	GD       string   `json:"gd"`
	Points   *int     `json:"pts"`
	XG       *float64 `json:"xg"`
	XGA      *float64 `json:"xga"`
	XGD      string   `json:"xgd"`
	XGDPer90 string   `json:"xgdPer90"`
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
