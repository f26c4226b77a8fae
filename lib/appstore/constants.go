package appstore

// Collection names the RSS feed collections the List operation accepts.
type Collection string

const (
	TopMac          Collection = "topmacapps"
	TopFreeMac      Collection = "topfreemacapps"
	TopGrossingMac  Collection = "topgrossingmacapps"
	TopPaidMac      Collection = "toppaidmacapps"
	NewIos          Collection = "newapplications"
	NewFreeIos      Collection = "newfreeapplications"
	NewPaidIos      Collection = "newpaidapplications"
	TopFreeIos      Collection = "topfreeapplications"
	TopFreeIpad     Collection = "topfreeipadapplications"
	TopGrossingIos  Collection = "topgrossingapplications"
	TopGrossingIpad Collection = "topgrossingipadapplications"
	TopPaidIos      Collection = "toppaidapplications"
	TopPaidIpad     Collection = "toppaidipadapplications"
)

// Category is a storefront genre identifier.
type Category int

const (
	Books            Category = 6018
	Business         Category = 6000
	Catalogs         Category = 6022
	Education        Category = 6017
	Entertainment    Category = 6016
	Finance          Category = 6015
	FoodAndDrink     Category = 6023
	Games            Category = 6014
	GamesAction      Category = 7001
	GamesAdventure   Category = 7002
	GamesArcade      Category = 7003
	GamesBoard       Category = 7004
	GamesCard        Category = 7005
	GamesCasino      Category = 7006
	GamesDice        Category = 7007
	GamesEducational Category = 7008
	GamesFamily      Category = 7009
	GamesMusic       Category = 7011
	GamesPuzzle      Category = 7012
	GamesRacing      Category = 7013
	GamesRolePlaying Category = 7014
	GamesSimulation  Category = 7015
	GamesSports      Category = 7016
	GamesStrategy    Category = 7017
	GamesTrivia      Category = 7018
	GamesWord        Category = 7019
	HealthAndFitness Category = 6013
	Lifestyle        Category = 6012
	Magazines        Category = 6021
	Medical          Category = 6020
	Music            Category = 6011
	Navigation       Category = 6010
	News             Category = 6009
	PhotoAndVideo    Category = 6008
	Productivity     Category = 6007
	Reference        Category = 6006
	Shopping         Category = 6024
	SocialNetworking Category = 6005
	Sports           Category = 6004
	Travel           Category = 6003
	Utilities        Category = 6002
	Weather          Category = 6001
)

// Sort orders for the reviews feed.
type Sort string

const (
	SortRecent  Sort = "mostRecent"
	SortHelpful Sort = "mostHelpful"
)
