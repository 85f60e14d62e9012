package memory

import (
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
)

func i(v int) *int { return &v }

func f(v float64) *float64 { return &v }

// SeedPlayers is a slice of the 2024/25 Champions League league-phase player table, used when DB_DRIVER=memory.
func SeedPlayers() []player.Player {
	return []player.Player{
		{Index: 1, Name: "Raphinha", Nation: "br BRA", Position: "FW,MF", Age: i(27), MP: i(8), Starts: i(8), Min: i(702), Nineties: f(7.8), Goals: i(8), Assists: i(5), GPlusA: i(13), GMinusPK: i(7), PK: i(1), PKAtt: i(1), CrdY: i(1), CrdR: i(0), XG: f(4.9), NPXG: f(4.1), XAG: f(3.2), NPXGPlusXAG: f(7.3), PrgC: f(21), PrgP: f(34), PrgR: f(58), Team: "Barcelona"},
		{Index: 2, Name: "Robert Lewandowski", Nation: "pl POL", Position: "FW", Age: i(36), MP: i(8), Starts: i(8), Min: i(653), Nineties: f(7.3), Goals: i(9), Assists: i(1), GPlusA: i(10), GMinusPK: i(6), PK: i(3), PKAtt: i(3), CrdY: i(0), CrdR: i(0), XG: f(7.8), NPXG: f(5.5), XAG: f(0.9), NPXGPlusXAG: f(6.4), PrgC: f(2), PrgP: f(11), PrgR: f(49), Team: "Barcelona"},
		{Index: 3, Name: "Mohamed Salah", Nation: "eg EGY", Position: "FW", Age: i(32), MP: i(7), Starts: i(6), Min: i(561), Nineties: f(6.2), Goals: i(2), Assists: i(3), GPlusA: i(5), GMinusPK: i(1), PK: i(1), PKAtt: i(1), CrdY: i(0), CrdR: i(0), XG: f(3.6), NPXG: f(2.8), XAG: f(2.5), NPXGPlusXAG: f(5.3), PrgC: f(17), PrgP: f(20), PrgR: f(61), Team: "Liverpool"},
		{Index: 4, Name: "Bukayo Saka", Nation: "eng ENG", Position: "FW", Age: i(23), MP: i(6), Starts: i(6), Min: i(468), Nineties: f(5.2), Goals: i(3), Assists: i(2), GPlusA: i(5), GMinusPK: i(2), PK: i(1), PKAtt: i(1), CrdY: i(1), CrdR: i(0), XG: f(2.9), NPXG: f(2.1), XAG: f(2.0), NPXGPlusXAG: f(4.1), PrgC: f(19), PrgP: f(22), PrgR: f(44), Team: "Arsenal"},
		{Index: 5, Name: "Declan Rice", Nation: "eng ENG", Position: "MF", Age: i(25), MP: i(7), Starts: i(6), Min: i(541), Nineties: f(6.0), Goals: i(0), Assists: i(2), GPlusA: i(2), GMinusPK: i(0), PK: i(0), PKAtt: i(0), CrdY: i(1), CrdR: i(0), XG: f(0.6), NPXG: f(0.6), XAG: f(1.4), NPXGPlusXAG: f(2.0), PrgC: f(8), PrgP: f(37), PrgR: f(15), Team: "Arsenal"},
		{Index: 6, Name: "Lautaro Martinez", Nation: "ar ARG", Position: "FW", Age: i(27), MP: i(7), Starts: i(6), Min: i(520), Nineties: f(5.8), Goals: i(4), Assists: i(0), GPlusA: i(4), GMinusPK: i(4), PK: i(0), PKAtt: i(0), CrdY: i(1), CrdR: i(0), XG: f(3.4), NPXG: f(3.4), XAG: f(0.8), NPXGPlusXAG: f(4.2), PrgC: f(5), PrgP: f(12), PrgR: f(40), Team: "Inter Milan"},
		{Index: 7, Name: "Julian Alvarez", Nation: "ar ARG", Position: "FW", Age: i(24), MP: i(8), Starts: i(7), Min: i(611), Nineties: f(6.8), Goals: i(7), Assists: i(1), GPlusA: i(8), GMinusPK: i(6), PK: i(1), PKAtt: i(2), CrdY: i(0), CrdR: i(0), XG: f(5.1), NPXG: f(3.6), XAG: f(1.1), NPXGPlusXAG: f(4.7), PrgC: f(9), PrgP: f(18), PrgR: f(38), Team: "Atletico Madrid"},
		{Index: 8, Name: "Florian Wirtz", Nation: "de GER", Position: "MF,FW", Age: i(21), MP: i(8), Starts: i(8), Min: i(648), Nineties: f(7.2), Goals: i(4), Assists: i(3), GPlusA: i(7), GMinusPK: i(4), PK: i(0), PKAtt: i(0), CrdY: i(0), CrdR: i(0), XG: f(3.0), NPXG: f(3.0), XAG: f(2.7), NPXGPlusXAG: f(5.7), PrgC: f(26), PrgP: f(41), PrgR: f(63), Team: "Bayer Leverkusen"},
		{Index: 9, Name: "Kylian Mbappe", Nation: "fr FRA", Position: "FW", Age: i(25), MP: i(8), Starts: i(8), Min: i(697), Nineties: f(7.7), Goals: i(7), Assists: i(1), GPlusA: i(8), GMinusPK: i(6), PK: i(1), PKAtt: i(2), CrdY: i(0), CrdR: i(0), XG: f(6.2), NPXG: f(4.7), XAG: f(1.3), NPXGPlusXAG: f(6.0), PrgC: f(24), PrgP: f(15), PrgR: f(70), Team: "Real Madrid"},
		{Index: 10, Name: "Vinicius Junior", Nation: "br BRA", Position: "FW", Age: i(24), MP: i(7), Starts: i(7), Min: i(607), Nineties: f(6.7), Goals: i(6), Assists: i(3), GPlusA: i(9), GMinusPK: i(6), PK: i(0), PKAtt: i(0), CrdY: i(2), CrdR: i(0), XG: f(4.4), NPXG: f(4.4), XAG: f(2.6), NPXGPlusXAG: f(7.0), PrgC: f(38), PrgP: f(19), PrgR: f(77), Team: "Real Madrid"},
		{Index: 11, Name: "Ousmane Dembele", Nation: "fr FRA", Position: "FW", Age: i(27), MP: i(7), Starts: i(5), Min: i(455), Nineties: f(5.1), Goals: i(2), Assists: i(1), GPlusA: i(3), GMinusPK: i(2), PK: i(0), PKAtt: i(0), CrdY: i(1), CrdR: i(0), XG: f(2.3), NPXG: f(2.3), XAG: f(1.8), NPXGPlusXAG: f(4.1), PrgC: f(22), PrgP: f(17), PrgR: f(39), Team: "Paris Saint-Germain"},
		{Index: 12, Name: "Achraf Hakimi", Nation: "ma MAR", Position: "DF", Age: i(25), MP: i(8), Starts: i(8), Min: i(714), Nineties: f(7.9), Goals: i(1), Assists: i(3), GPlusA: i(4), GMinusPK: i(1), PK: i(0), PKAtt: i(0), CrdY: i(2), CrdR: i(0), XG: f(0.9), NPXG: f(0.9), XAG: f(2.2), NPXGPlusXAG: f(3.1), PrgC: f(18), PrgP: f(45), PrgR: f(52), Team: "Paris Saint-Germain"},
		{Index: 13, Name: "Erling Haaland", Nation: "no NOR", Position: "FW", Age: i(24), MP: i(7), Starts: i(7), Min: i(611), Nineties: f(6.8), Goals: i(8), Assists: i(0), GPlusA: i(8), GMinusPK: i(7), PK: i(1), PKAtt: i(1), CrdY: i(0), CrdR: i(0), XG: f(7.1), NPXG: f(6.3), XAG: f(0.5), NPXGPlusXAG: f(6.8), PrgC: f(3), PrgP: f(6), PrgR: f(35), Team: "Manchester City"},
		{Index: 14, Name: "Kyogo Furuhashi", Nation: "jp JPN", Position: "FW", Age: i(29), MP: i(6), Starts: i(4), Min: i(360), Nineties: f(4.0), Goals: i(1), Assists: i(0), GPlusA: i(1), GMinusPK: i(1), PK: i(0), PKAtt: i(0), CrdY: i(0), CrdR: i(0), XG: f(1.5), NPXG: f(1.5), XAG: f(0.3), NPXGPlusXAG: f(1.8), PrgC: f(1), PrgP: f(3), PrgR: f(22), Team: "Celtic"},
		{Index: 15, Name: "Trialist", Nation: "sct SCO", Position: "MF", Team: "Celtic"},
	}
}

// SeedTeams is the matching standing table slice.
func SeedTeams() []team.Team {
	return []team.Team{
		{Rank: i(1), Name: "Liverpool", MP: i(8), W: i(7), D: i(0), L: i(1), GF: i(17), GA: i(5), GD: "+12", Points: i(21), XG: f(17.9), XGA: f(7.2), XGD: "+10.7", XGDPer90: "+1.34"},
		{Rank: i(2), Name: "Barcelona", MP: i(8), W: i(6), D: i(1), L: i(1), GF: i(28), GA: i(13), GD: "+15", Points: i(19), XG: f(19.8), XGA: f(9.6), XGD: "+10.2", XGDPer90: "+1.28"},
		{Rank: i(3), Name: "Arsenal", MP: i(8), W: i(6), D: i(1), L: i(1), GF: i(16), GA: i(3), GD: "+13", Points: i(19), XG: f(14.1), XGA: f(4.9), XGD: "+9.2", XGDPer90: "+1.15"},
		{Rank: i(4), Name: "Inter Milan", MP: i(8), W: i(6), D: i(1), L: i(1), GF: i(11), GA: i(1), GD: "+10", Points: i(19), XG: f(12.3), XGA: f(5.0), XGD: "+7.3", XGDPer90: "+0.91"},
		{Rank: i(5), Name: "Atletico Madrid", MP: i(8), W: i(6), D: i(0), L: i(2), GF: i(20), GA: i(12), GD: "+8", Points: i(18), XG: f(15.0), XGA: f(10.4), XGD: "+4.6", XGDPer90: "+0.58"},
		{Rank: i(6), Name: "Bayer Leverkusen", MP: i(8), W: i(5), D: i(1), L: i(2), GF: i(15), GA: i(7), GD: "+8", Points: i(16), XG: f(13.7), XGA: f(8.8), XGD: "+4.9", XGDPer90: "+0.61"},
		{Rank: i(11), Name: "Real Madrid", MP: i(8), W: i(5), D: i(0), L: i(3), GF: i(20), GA: i(12), GD: "+8", Points: i(15), XG: f(17.2), XGA: f(11.5), XGD: "+5.7", XGDPer90: "+0.71"},
		{Rank: i(15), Name: "Paris Saint-Germain", MP: i(8), W: i(4), D: i(1), L: i(3), GF: i(14), GA: i(9), GD: "+5", Points: i(13), XG: f(18.4), XGA: f(8.1), XGD: "+10.3", XGDPer90: "+1.29"},
		{Rank: i(21), Name: "Celtic", MP: i(8), W: i(3), D: i(3), L: i(2), GF: i(13), GA: i(14), GD: "-1", Points: i(12), XG: f(10.9), XGA: f(13.8), XGD: "-2.9", XGDPer90: "-0.36"},
		{Rank: i(22), Name: "Manchester City", MP: i(8), W: i(3), D: i(2), L: i(3), GF: i(18), GA: i(14), GD: "+4", Points: i(11), XG: f(16.6), XGA: f(9.9), XGD: "+6.7", XGDPer90: "+0.84"},
	}
}
