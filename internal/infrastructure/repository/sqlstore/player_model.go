package sqlstore

import "github.com/riskibarqy/fantasy-football/internal/domain/player"

const playerTable = "all_teams_ucl"

// playerTableModel mirrors all_teams_ucl; db tags are the scraped column headers.
type playerTableModel struct {
	Index       int      `db:"Index"`
	Name        string   `db:"Player"`
	Nation      *string  `db:"Nation"`
	Position    *string  `db:"Pos"`
	Age         *int     `db:"Age"`
	MP          *int     `db:"MP"`
	Starts      *int     `db:"Starts"`
	Min         *int     `db:"Min"`
	Nineties    *float64 `db:"90s"`
	Goals       *int     `db:"Gls"`
	Assists     *int     `db:"Ast"`
	GPlusA      *int     `db:"G+A"`
	GMinusPK    *int     `db:"G-PK"`
	PK          *int     `db:"PK"`
	PKAtt       *int     `db:"PKatt"`
	CrdY        *int     `db:"CrdY"`
	CrdR        *int     `db:"CrdR"`
	XG          *float64 `db:"xG"`
	NPXG        *float64 `db:"npxG"`
	XAG         *float64 `db:"xAG"`
	NPXGPlusXAG *float64 `db:"npxG+xAG"`
	PrgC        *float64 `db:"PrgC"`
	PrgP        *float64 `db:"PrgP"`
	PrgR        *float64 `db:"PrgR"`
	Team        *string  `db:"Team"`
}

var playerColumns = []string{
	"Index", "Player", "Nation", "Pos", "Age", "MP", "Starts", "Min", "90s", "Gls", "Ast", "G+A", "G-PK",
	"PK", "PKatt", "CrdY", "CrdR", "xG", "npxG", "xAG", "npxG+xAG", "PrgC", "PrgP", "PrgR", "Team",
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		Index:       m.Index,
		Name:        m.Name,
		Nation:      deref(m.Nation),
		Position:    deref(m.Position),
		Age:         m.Age,
		MP:          m.MP,
		Starts:      m.Starts,
		Min:         m.Min,
		Nineties:    m.Nineties,
		Goals:       m.Goals,
		Assists:     m.Assists,
		GPlusA:      m.GPlusA,
		GMinusPK:    m.GMinusPK,
		PK:          m.PK,
		PKAtt:       m.PKAtt,
		CrdY:        m.CrdY,
		CrdR:        m.CrdR,
		XG:          m.XG,
		NPXG:        m.NPXG,
		XAG:         m.XAG,
		NPXGPlusXAG: m.NPXGPlusXAG,
		PrgC:        m.PrgC,
		PrgP:        m.PrgP,
		PrgR:        m.PrgR,
		Team:        deref(m.Team),
	}
}

func playerModelFromDomain(p player.Player) playerTableModel {
	return playerTableModel{
		Index:       p.Index,
		Name:        p.Name,
		Nation:      nullable(p.Nation),
		Position:    nullable(p.Position),
		Age:         p.Age,
		MP:          p.MP,
		Starts:      p.Starts,
		Min:         p.Min,
		Nineties:    p.Nineties,
		Goals:       p.Goals,
		Assists:     p.Assists,
		GPlusA:      p.GPlusA,
		GMinusPK:    p.GMinusPK,
		PK:          p.PK,
		PKAtt:       p.PKAtt,
		CrdY:        p.CrdY,
		CrdR:        p.CrdR,
		XG:          p.XG,
		NPXG:        p.NPXG,
		XAG:         p.XAG,
		NPXGPlusXAG: p.NPXGPlusXAG,
		PrgC:        p.PrgC,
		PrgP:        p.PrgP,
		PrgR:        p.PrgR,
		Team:        nullable(p.Team),
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
