package soccer

type Area struct {
	AreaID       int           `json:"AreaId"`
	CountryCode  *string       `json:"CountryCode"`
	Name         string        `json:"Name"`
	Competitions []Competition `json:"Competitions"`
}

type Competition struct {
	CompetitionID int      `json:"CompetitionId"`
	AreaID        int      `json:"AreaId"`
	AreaName      string   `json:"AreaName"`
	Name          string   `json:"Name"`
	Gender        string   `json:"Gender"`
	Type          string   `json:"Type"`
	Format        string   `json:"Format"`
	Key           string   `json:"Key"`
	Seasons       []Season `json:"Seasons"`
}

type Season struct {
	SeasonID        int     `json:"SeasonId"`
	CompetitionID   int     `json:"CompetitionId"`
	Season          int     `json:"Season"`
	Name            string  `json:"Name"`
	CompetitionName string  `json:"CompetitionName"`
	StartDate       *string `json:"StartDate"`
	EndDate         *string `json:"EndDate"`
	CurrentSeason   bool    `json:"CurrentSeason"`
	Rounds          []Round `json:"Rounds"`
}

type Round struct {
	RoundID      int     `json:"RoundId"`
	SeasonID     int     `json:"SeasonId"`
	Season       int     `json:"Season"`
	SeasonType   int     `json:"SeasonType"`
	Name         string  `json:"Name"`
	Type         string  `json:"Type"`
	StartDate    *string `json:"StartDate"`
	EndDate      *string `json:"EndDate"`
	CurrentWeek  *int    `json:"CurrentWeek"`
	CurrentRound bool    `json:"CurrentRound"`
}

// CompetitionDetail is a competition with its current season's teams and games.
type CompetitionDetail struct {
	Competition
	CurrentSeason *Season `json:"CurrentSeason"`
	Teams         []Team  `json:"Teams"`
	Games         []Game  `json:"Games"`
}

type Game struct {
	GameID        int     `json:"GameId"`
	RoundID       int     `json:"RoundId"`
	Season        int     `json:"Season"`
	SeasonType    int     `json:"SeasonType"`
	Group         *string `json:"Group"`
	AwayTeamID    int     `json:"AwayTeamId"`
	HomeTeamID    int     `json:"HomeTeamId"`
	VenueID       *int    `json:"VenueId"`
	Day           *string `json:"Day"`
	DateTime      *string `json:"DateTime"`
	Status        string  `json:"Status"`
	Week          *int    `json:"Week"`
	Period        *string `json:"Period"`
	Clock         *int    `json:"Clock"`
	Winner        *string `json:"Winner"`
	VenueType     *string `json:"VenueType"`
	AwayTeamKey   string  `json:"AwayTeamKey"`
	AwayTeamName  string  `json:"AwayTeamName"`
	HomeTeamKey   string  `json:"HomeTeamKey"`
	HomeTeamName  string  `json:"HomeTeamName"`
	AwayTeamScore *int    `json:"AwayTeamScore"`
	HomeTeamScore *int    `json:"HomeTeamScore"`
	Updated       *string `json:"Updated"`
	UpdatedUtc    *string `json:"UpdatedUtc"`
	GlobalGameID  int     `json:"GlobalGameId"`
	IsClosed      bool    `json:"IsClosed"`
}

type Team struct {
	TeamID           int     `json:"TeamId"`
	AreaID           int     `json:"AreaId"`
	VenueID          *int    `json:"VenueId"`
	Key              string  `json:"Key"`
	Name             string  `json:"Name"`
	FullName         *string `json:"FullName"`
	Active           bool    `json:"Active"`
	AreaName         string  `json:"AreaName"`
	VenueName        *string `json:"VenueName"`
	Gender           string  `json:"Gender"`
	Type             string  `json:"Type"`
	Address          *string `json:"Address"`
	City             *string `json:"City"`
	Zip              *string `json:"Zip"`
	Phone            *string `json:"Phone"`
	Fax              *string `json:"Fax"`
	Website          *string `json:"Website"`
	Email            *string `json:"Email"`
	Founded          *int    `json:"Founded"`
	ClubColor1       *string `json:"ClubColor1"`
	ClubColor2       *string `json:"ClubColor2"`
	ClubColor3       *string `json:"ClubColor3"`
	Nickname1        *string `json:"Nickname1"`
	Nickname2        *string `json:"Nickname2"`
	Nickname3        *string `json:"Nickname3"`
	WikipediaLogoURL *string `json:"WikipediaLogoUrl"`
	GlobalTeamID     int     `json:"GlobalTeamId"`
}

type Standing struct {
	StandingID        int     `json:"StandingId"`
	RoundID           int     `json:"RoundId"`
	TeamID            int     `json:"TeamId"`
	Name              string  `json:"Name"`
	ShortName         string  `json:"ShortName"`
	Scope             string  `json:"Scope"`
	Order             *int    `json:"Order"`
	Games             int     `json:"Games"`
	Wins              int     `json:"Wins"`
	Losses            int     `json:"Losses"`
	Draws             int     `json:"Draws"`
	GoalsScored       int     `json:"GoalsScored"`
	GoalsAgainst      int     `json:"GoalsAgainst"`
	GoalsDifferential int     `json:"GoalsDifferential"`
	Points            int     `json:"Points"`
	Group             *string `json:"Group"`
	GroupRank         *int    `json:"GroupRank"`
	GlobalTeamID      int     `json:"GlobalTeamId"`
}
