package nfl

// Provider date-times carry no zone designator, so they stay strings.

type Bye struct {
	Season int    `json:"Season"`
	Week   int    `json:"Week"`
	Team   string `json:"Team"`
}

type Score struct {
	GameKey              string   `json:"GameKey"`
	SeasonType           int      `json:"SeasonType"`
	Season               int      `json:"Season"`
	Week                 int      `json:"Week"`
	Date                 *string  `json:"Date"`
	AwayTeam             string   `json:"AwayTeam"`
	HomeTeam             string   `json:"HomeTeam"`
	AwayScore            *int     `json:"AwayScore"`
	HomeScore            *int     `json:"HomeScore"`
	Channel              *string  `json:"Channel"`
	PointSpread          *float64 `json:"PointSpread"`
	OverUnder            *float64 `json:"OverUnder"`
	Quarter              *string  `json:"Quarter"`
	TimeRemaining        *string  `json:"TimeRemaining"`
	Possession           *string  `json:"Possession"`
	Down                 *int     `json:"Down"`
	Distance             *string  `json:"Distance"`
	YardLine             *int     `json:"YardLine"`
	IsInProgress         bool     `json:"IsInProgress"`
	IsOver               bool     `json:"IsOver"`
	Has1stQuarterStarted bool     `json:"Has1stQuarterStarted"`
	StadiumID            *int     `json:"StadiumID"`
	Status               string   `json:"Status"`
	GlobalGameID         int      `json:"GlobalGameID"`
	ScoreID              int      `json:"ScoreID"`
	Canceled             *bool    `json:"Canceled"`
	Closed               *bool    `json:"Closed"`
	LastUpdated          *string  `json:"LastUpdated"`
}

type Schedule struct {
	GameKey      string   `json:"GameKey"`
	SeasonType   int      `json:"SeasonType"`
	Season       int      `json:"Season"`
	Week         int      `json:"Week"`
	Date         *string  `json:"Date"`
	AwayTeam     string   `json:"AwayTeam"`
	HomeTeam     string   `json:"HomeTeam"`
	Channel      *string  `json:"Channel"`
	PointSpread  *float64 `json:"PointSpread"`
	OverUnder    *float64 `json:"OverUnder"`
	StadiumID    *int     `json:"StadiumID"`
	Canceled     *bool    `json:"Canceled"`
	GlobalGameID int      `json:"GlobalGameID"`
	ScoreID      int      `json:"ScoreID"`
	Status       string   `json:"Status"`
	DateTime     *string  `json:"DateTime"`
}

type Standing struct {
	SeasonType       int     `json:"SeasonType"`
	Season           int     `json:"Season"`
	Conference       string  `json:"Conference"`
	Division         string  `json:"Division"`
	Team             string  `json:"Team"`
	Name             string  `json:"Name"`
	Wins             int     `json:"Wins"`
	Losses           int     `json:"Losses"`
	Ties             int     `json:"Ties"`
	Percentage       float64 `json:"Percentage"`
	PointsFor        int     `json:"PointsFor"`
	PointsAgainst    int     `json:"PointsAgainst"`
	NetPoints        int     `json:"NetPoints"`
	Touchdowns       int     `json:"Touchdowns"`
	DivisionWins     int     `json:"DivisionWins"`
	DivisionLosses   int     `json:"DivisionLosses"`
	ConferenceWins   int     `json:"ConferenceWins"`
	ConferenceLosses int     `json:"ConferenceLosses"`
	TeamID           int     `json:"TeamID"`
	GlobalTeamID     int     `json:"GlobalTeamID"`
	DivisionRank     *int    `json:"DivisionRank"`
	ConferenceRank   *int    `json:"ConferenceRank"`
}

type Stadium struct {
	StadiumID      int      `json:"StadiumID"`
	Name           string   `json:"Name"`
	City           string   `json:"City"`
	State          *string  `json:"State"`
	Country        string   `json:"Country"`
	Capacity       *int     `json:"Capacity"`
	PlayingSurface string   `json:"PlayingSurface"`
	GeoLat         *float64 `json:"GeoLat"`
	GeoLong        *float64 `json:"GeoLong"`
	Type           string   `json:"Type"`
}

type Team struct {
	Key                  string   `json:"Key"`
	TeamID               int      `json:"TeamID"`
	PlayerID             int      `json:"PlayerID"`
	City                 string   `json:"City"`
	Name                 string   `json:"Name"`
	Conference           string   `json:"Conference"`
	Division             string   `json:"Division"`
	FullName             string   `json:"FullName"`
	StadiumID            *int     `json:"StadiumID"`
	ByeWeek              *int     `json:"ByeWeek"`
	HeadCoach            *string  `json:"HeadCoach"`
	OffensiveCoordinator *string  `json:"OffensiveCoordinator"`
	DefensiveCoordinator *string  `json:"DefensiveCoordinator"`
	PrimaryColor         *string  `json:"PrimaryColor"`
	SecondaryColor       *string  `json:"SecondaryColor"`
	WikipediaLogoURL     *string  `json:"WikipediaLogoUrl"`
	GlobalTeamID         int      `json:"GlobalTeamID"`
	StadiumDetails       *Stadium `json:"StadiumDetails"`
}

type Timeframe struct {
	SeasonType          int     `json:"SeasonType"`
	Season              int     `json:"Season"`
	Week                *int    `json:"Week"`
	Name                string  `json:"Name"`
	ShortName           string  `json:"ShortName"`
	StartDate           string  `json:"StartDate"`
	EndDate             string  `json:"EndDate"`
	FirstGameStart      *string `json:"FirstGameStart"`
	FirstGameEnd        *string `json:"FirstGameEnd"`
	LastGameEnd         *string `json:"LastGameEnd"`
	HasGames            bool    `json:"HasGames"`
	HasStarted          bool    `json:"HasStarted"`
	HasEnded            bool    `json:"HasEnded"`
	HasFirstGameStarted bool    `json:"HasFirstGameStarted"`
	HasFirstGameEnded   bool    `json:"HasFirstGameEnded"`
	HasLastGameEnded    bool    `json:"HasLastGameEnded"`
	APISeason           string  `json:"ApiSeason"`
	APIWeek             string  `json:"ApiWeek"`
}

type News struct {
	NewsID         int     `json:"NewsID"`
	Source         string  `json:"Source"`
	Updated        string  `json:"Updated"`
	TimeAgo        string  `json:"TimeAgo"`
	Title          string  `json:"Title"`
	Content        string  `json:"Content"`
	URL            string  `json:"Url"`
	TermsOfUse     string  `json:"TermsOfUse"`
	Author         *string `json:"Author"`
	Categories     string  `json:"Categories"`
	PlayerID       *int    `json:"PlayerID"`
	TeamID         *int    `json:"TeamID"`
	Team           *string `json:"Team"`
	OriginalSource *string `json:"OriginalSource"`
}

type PlayerDetail struct {
	PlayerID         int     `json:"PlayerID"`
	Team             *string `json:"Team"`
	Number           *int    `json:"Number"`
	FirstName        string  `json:"FirstName"`
	LastName         string  `json:"LastName"`
	Position         string  `json:"Position"`
	Status           string  `json:"Status"`
	Height           *string `json:"Height"`
	Weight           *int    `json:"Weight"`
	BirthDate        *string `json:"BirthDate"`
	College          *string `json:"College"`
	Experience       *int    `json:"Experience"`
	FantasyPosition  string  `json:"FantasyPosition"`
	Active           bool    `json:"Active"`
	PositionCategory string  `json:"PositionCategory"`
	Name             string  `json:"Name"`
	Age              *int    `json:"Age"`
	PhotoURL         *string `json:"PhotoUrl"`
	ByeWeek          *int    `json:"ByeWeek"`
	InjuryStatus     *string `json:"InjuryStatus"`
	TeamID           *int    `json:"TeamID"`
	GlobalTeamID     *int    `json:"GlobalTeamID"`
	LatestNews       []News  `json:"LatestNews"`
}
