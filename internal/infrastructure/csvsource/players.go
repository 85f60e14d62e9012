package csvsource

import (
	"errors"
	"io"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
)

// ReadPlayers parses an all_teams_ucl export. Rows without an "Index" column are numbered from 1 in file order.
// Team names are normalised. Rows with an empty player name (FBref repeats the header mid-table) are skipped.
func ReadPlayers(r io.Reader, source string) ([]player.Player, error) {
	t, err := openTable(r, source, "Player", "Team")
	if err != nil {
		return nil, err
	}

	var out []player.Player
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		name := rec.text("Player")
		if name == "" || name == "Player" {
			continue
		}

		p, err := playerFromRow(rec, name, len(out)+1)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	if _, ok := t.columns["Index"]; ok {
		shiftZeroBasedIndexes(out)
	}
	return out, nil
}

func playerFromRow(rec row, name string, ordinal int) (player.Player, error) {
	index := ordinal
	if rec.has("Index") {
		raw := rec.text("Index")
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return player.Player{}, rec.errorf("Index", crerr.Newf("invalid index %q", raw))
		}
		index = v
	}

	fs := fieldSet{r: rec}
	p := player.Player{
		Index:       index,
		Name:        name,
		Nation:      rec.text("Nation"),
		Position:    rec.text("Pos"),
		Age:         fs.age("Age"),
		MP:          fs.int("MP"),
		Starts:      fs.int("Starts"),
		Min:         fs.int("Min"),
		Nineties:    fs.float("90s"),
		Goals:       fs.int("Gls"),
		Assists:     fs.int("Ast"),
		GPlusA:      fs.int("G+A"),
		GMinusPK:    fs.int("G-PK"),
		PK:          fs.int("PK"),
		PKAtt:       fs.int("PKatt"),
		CrdY:        fs.int("CrdY"),
		CrdR:        fs.int("CrdR"),
		XG:          fs.float("xG"),
		NPXG:        fs.float("npxG"),
		XAG:         fs.float("xAG"),
		NPXGPlusXAG: fs.float("npxG+xAG"),
		PrgC:        fs.float("PrgC"),
		PrgP:        fs.float("PrgP"),
		PrgR:        fs.float("PrgR"),
		Team:        team.NormalizeName(rec.text("Team")),
	}
	if fs.err != nil {
		return player.Player{}, fs.err
	}

	return p, nil
}

// shiftZeroBasedIndexes moves a pandas-style 0-based index to start at 1.
func shiftZeroBasedIndexes(items []player.Player) {
	for _, item := range items {
		if item.Index == 0 {
			for i := range items {
				items[i].Index++
			}
			return
		}
	}
}
