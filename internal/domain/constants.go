package domain

// Pick values - the three match outcomes a user can predict
const (
	PickNone    Pick = ""
	PickHomeWin Pick = "HOME_WIN"
	PickDraw    Pick = "DRAW"
	PickAwayWin Pick = "AWAY_WIN"
)

// Tiebreak score sides
const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Competition identifiers accepted by the backend
const (
	CompetitionPremierLeague   Competition = "PREMIER_LEAGUE"
	CompetitionLaLiga          Competition = "LA_LIGA"
	CompetitionSerieA          Competition = "SERIE_A"
	CompetitionBundesliga      Competition = "BUNDESLIGA"
	CompetitionLigue1          Competition = "LIGUE_1"
	CompetitionChampionsLeague Competition = "CHAMPIONS_LEAGUE"
)

// Session types a user can join
const (
	SessionOneVsOne    SessionType = "ONE_VS_ONE"
	SessionSmallGroup  SessionType = "SMALL_GROUP"
	SessionMediumGroup SessionType = "MEDIUM_GROUP"
	SessionOpenRoom    SessionType = "OPEN_ROOM"
)

// Query parameter names used by the submit-predictions endpoint
const (
	QueryParamSessionType = "sessionType"
	QueryParamBuyInAmount = "buyInAmount"
	QueryParamIsPrivate   = "isPrivate"
	QueryParamAccessKey   = "accessKey"
)

// Role claims the identity provider may grant
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
