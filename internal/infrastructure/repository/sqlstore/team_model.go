package sqlstore

import "github.com/riskibarqy/fantasy-football/internal/domain/team"

const teamTable = "standing"

type teamTableModel struct {
	Name     string   `db:"Squad"`
	Rank     *int     `db:"Rk"`
	MP       *int     `db:"MP"`
	W        *int     `db:"W"`
	D        *int     `db:"D"`
	L        *int     `db:"L"`
	GF       *int     `db:"GF"`
	GA       *int     `db:"GA"`
	GD       *string  `db:"GD"`
	Points   *int     `db:"Pts"`
	XG       *float64 `db:"xG"`
	XGA      *float64 `db:"xGA"`
	XGD      *string  `db:"xGD"`
	XGDPer90 *string  `db:"xGD/90"`
}

var teamColumns = []string{"Squad", "Rk", "MP", "W", "D", "L", "GF", "GA", "GD", "Pts", "xG", "xGA", "xGD", "xGD/90"}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		Rank:     m.Rank,
		Name:     m.Name,
		MP:       m.MP,
		W:        m.W,
		D:        m.D,
		L:        m.L,
		GF:       m.GF,
		GA:       m.GA,
		GD:       deref(m.GD),
		Points:   m.Points,
		XG:       m.XG,
		XGA:      m.XGA,
		XGD:      deref(m.XGD),
		XGDPer90: deref(m.XGDPer90),
	}
}

func teamModelFromDomain(t team.Team) teamTableModel {
	return teamTableModel{
		Name:     t.Name,
		Rank:     t.Rank,
		MP:       t.MP,
		W:        t.W,
		D:        t.D,
		L:        t.L,
		GF:       t.GF,
		GA:       t.GA,
		GD:       nullable(t.GD),
		Points:   t.Points,
		XG:       t.XG,
		XGA:      t.XGA,
		XGD:      nullable(t.XGD),
		XGDPer90: nullable(t.XGDPer90),
	}
}
