package csvsource

import (
	"errors"
	"io"

	"github.com/riskibarqy/fantasy-football/internal/domain/team"
)

// ReadTeams parses a standing export. Squad names are normalised; extra FBref columns are ignored.
func ReadTeams(r io.Reader, source string) ([]team.Team, error) {
	t, err := openTable(r, source, "Squad")
	if err != nil {
		return nil, err
	}

	var out []team.Team
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		name := team.NormalizeName(rec.text("Squad"))
		if name == "" || name == "Squad" {
			continue
		}

		fs := fieldSet{r: rec}
		item := team.Team{
			Rank:     fs.int("Rk"),
			Name:     name,
			MP:       fs.int("MP"),
			W:        fs.int("W"),
			D:        fs.int("D"),
			L:        fs.int("L"),
			GF:       fs.int("GF"),
			GA:       fs.int("GA"),
			GD:       rec.text("GD"),
			Points:   fs.int("Pts"),
			XG:       fs.float("xG"),
			XGA:      fs.float("xGA"),
			XGD:      rec.text("xGD"),
			XGDPer90: rec.text("xGD/90"),
		}
		if fs.err != nil {
			return nil, fs.err
		}
		out = append(out, item)
	}

	return out, nil
}
