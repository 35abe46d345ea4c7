package nba

type PlayByPlay struct {
	Game     Game      `json:"Game"`
	Quarters []Quarter `json:"Quarters"`
	Plays    []Play    `json:"Plays"`
}

type Game struct {
	GameID               int     `json:"GameID"`
	Season               int     `json:"Season"`
	SeasonType           int     `json:"SeasonType"`
	Status               string  `json:"Status"`
	Day                  *string `json:"Day"`
	DateTime             *string `json:"DateTime"`
	AwayTeam             string  `json:"AwayTeam"`
	HomeTeam             string  `json:"HomeTeam"`
	AwayTeamID           int     `json:"AwayTeamID"`
	HomeTeamID           int     `json:"HomeTeamID"`
	AwayTeamScore        *int    `json:"AwayTeamScore"`
	HomeTeamScore        *int    `json:"HomeTeamScore"`
	Updated              *string `json:"Updated"`
	Quarter              *string `json:"Quarter"`
	TimeRemainingMinutes *int    `json:"TimeRemainingMinutes"`
	TimeRemainingSeconds *int    `json:"TimeRemainingSeconds"`
	GlobalGameID         int     `json:"GlobalGameID"`
	IsClosed             bool    `json:"IsClosed"`
}

type Quarter struct {
	QuarterID int    `json:"QuarterID"`
	GameID    int    `json:"GameID"`
	Number    int    `json:"Number"`
	Name      string `json:"Name"`
	AwayScore *int   `json:"AwayScore"`
	HomeScore *int   `json:"HomeScore"`
}

type Play struct {
	PlayID               int     `json:"PlayID"`
	QuarterID            int     `json:"QuarterID"`
	QuarterName          string  `json:"QuarterName"`
	Sequence             int     `json:"Sequence"`
	TimeRemainingMinutes *int    `json:"TimeRemainingMinutes"`
	TimeRemainingSeconds *int    `json:"TimeRemainingSeconds"`
	AwayTeamScore        *int    `json:"AwayTeamScore"`
	HomeTeamScore        *int    `json:"HomeTeamScore"`
	PotentialPoints      *int    `json:"PotentialPoints"`
	Points               *int    `json:"Points"`
	ShotMade             *bool   `json:"ShotMade"`
	Category             string  `json:"Category"`
	Type                 string  `json:"Type"`
	TeamID               *int    `json:"TeamID"`
	Team                 *string `json:"Team"`
	OpponentID           *int    `json:"OpponentID"`
	Opponent             *string `json:"Opponent"`
	PlayerID             *int    `json:"PlayerID"`
	Description          string  `json:"Description"`
	Created              *string `json:"Created"`
	Updated              *string `json:"Updated"`
}
