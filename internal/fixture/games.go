// Package fixture holds the static data the store is seeded with at startup.
// Every function returns fresh values so callers may mutate them freely.
package fixture

import (
	"game-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Games() []model.Game {
	return []model.Game{
		{
			ID: 1, Title: "Cyberpunk 2077", Category: model.CategoryRPG, Price: price("59.99"), Rating: 4.2,
			ImageURL:    "https://placehold.co/300x400?text=Cyberpunk+2077",
			Description: "An open-world action adventure set in the megalopolis of Night City.",
			Tags:        []string{"open world", "cyberpunk", "rpg"},
			Developer:   "CD Projekt Red", Publisher: "CD Projekt", ReleaseDate: "2020-12-10",
		},
		{
			ID: 2, Title: "GTA V", Category: model.CategoryAction, Price: price("29.99"), Rating: 4.7,
			ImageURL:    "https://placehold.co/300x400?text=GTA+V",
			Description: "Three criminals plan a series of heists across Los Santos.",
			Tags:        []string{"open world", "crime", "multiplayer"},
			Developer:   "Rockstar North", Publisher: "Rockstar Games", ReleaseDate: "2013-09-17",
		},
		{
			ID: 3, Title: "Far Cry 6", Category: model.CategoryShooting, Price: price("49.99"), Rating: 4.0,
			ImageURL:    "https://placehold.co/300x400?text=Far+Cry+6",
			Description: "Join a guerrilla revolution on the tropical island of Yara.",
			Tags:        []string{"fps", "open world", "co-op"},
			Developer:   "Ubisoft Toronto", Publisher: "Ubisoft", ReleaseDate: "2021-10-07",
		},
		{
			ID: 4, Title: "God of War", Category: model.CategoryAction, Price: price("49.99"), Rating: 4.8,
			ImageURL:    "https://placehold.co/300x400?text=God+of+War",
			Description: "Kratos and his son Atreus journey through the realms of Norse myth.",
			Tags:        []string{"mythology", "story rich", "hack and slash"},
			Developer:   "Santa Monica Studio", Publisher: "Sony Interactive Entertainment", ReleaseDate: "2018-04-20",
		},
		{
			ID: 5, Title: "Marvel's Spider-Man", Category: model.CategoryAction, Price: price("39.99"), Rating: 4.6,
			ImageURL:    "https://placehold.co/300x400?text=Spider-Man",
			Description: "Swing through a living Manhattan as an experienced Peter Parker.",
			Tags:        []string{"superhero", "open world", "story rich"},
			Developer:   "Insomniac Games", Publisher: "Sony Interactive Entertainment", ReleaseDate: "2018-09-07",
		},
		{
			ID: 6, Title: "Call of Duty: Warzone", Category: model.CategoryShooting, Price: price("0"), Rating: 4.1,
			ImageURL:    "https://placehold.co/300x400?text=Warzone",
			Description: "A free-to-play battle royale with up to 150 players.",
			Tags:        []string{"battle royale", "fps", "multiplayer"},
			Developer:   "Infinity Ward", Publisher: "Activision", ReleaseDate: "2020-03-10", IsFree: true,
		},
		{
			ID: 7, Title: "Forza Horizon 5", Category: model.CategoryRacing, Price: price("59.99"), Rating: 4.7,
			ImageURL:    "https://placehold.co/300x400?text=Forza+Horizon+5",
			Description: "Explore the vibrant landscapes of Mexico in hundreds of cars.",
			Tags:        []string{"driving", "open world", "multiplayer"},
			Developer:   "Playground Games", Publisher: "Xbox Game Studios", ReleaseDate: "2021-11-09",
		},
		{
			ID: 8, Title: "Gran Turismo 7", Category: model.CategoryRacing, Price: price("69.99"), Rating: 4.4,
			ImageURL:    "https://placehold.co/300x400?text=Gran+Turismo+7",
			Description: "The real driving simulator celebrates car culture.",
			Tags:        []string{"simulation", "driving"},
			Developer:   "Polyphony Digital", Publisher: "Sony Interactive Entertainment", ReleaseDate: "2022-03-04",
		},
		{
			ID: 9, Title: "Mario Kart 8 Deluxe", Category: model.CategoryRacing, Price: price("59.99"), Rating: 4.8,
			ImageURL:    "https://placehold.co/300x400?text=Mario+Kart+8",
			Description: "Race and battle your friends on tracks full of items.",
			Tags:        []string{"family", "kart", "multiplayer"},
			Developer:   "Nintendo EPD", Publisher: "Nintendo", ReleaseDate: "2017-04-28",
		},
		{
			ID: 10, Title: "FIFA 23", Category: model.CategorySports, Price: price("69.99"), Rating: 3.9,
			ImageURL:    "https://placehold.co/300x400?text=FIFA+23",
			Description: "Football with men's and women's club competitions.",
			Tags:        []string{"football", "soccer", "multiplayer"},
			Developer:   "EA Vancouver", Publisher: "Electronic Arts", ReleaseDate: "2022-09-30",
		},
		{
			ID: 11, Title: "NBA 2K24", Category: model.CategorySports, Price: price("59.99"), Rating: 3.7,
			ImageURL:    "https://placehold.co/300x400?text=NBA+2K24",
			Description: "Basketball simulation with a career mode and online leagues.",
			Tags:        []string{"basketball", "simulation"},
			Developer:   "Visual Concepts", Publisher: "2K", ReleaseDate: "2023-09-08",
		},
		{
			ID: 12, Title: "Rocket League", Category: model.CategorySports, Price: price("0"), Rating: 4.3,
			ImageURL:    "https://placehold.co/300x400?text=Rocket+League",
			Description: "Soccer meets driving in rocket-powered cars.",
			Tags:        []string{"soccer", "driving", "competitive"},
			Developer:   "Psyonix", Publisher: "Psyonix", ReleaseDate: "2015-07-07", IsFree: true,
		},
		{
			ID: 13, Title: "Elden Ring", Category: model.CategoryRPG, Price: price("59.99"), Rating: 4.9,
			ImageURL:    "https://placehold.co/300x400?text=Elden+Ring",
			Description: "Rise, Tarnished, and become an Elden Lord in the Lands Between.",
			Tags:        []string{"souls-like", "open world", "dark fantasy"},
			Developer:   "FromSoftware", Publisher: "Bandai Namco", ReleaseDate: "2022-02-25",
		},
		{
			ID: 14, Title: "The Witcher 3: Wild Hunt", Category: model.CategoryRPG, Price: price("39.99"), Rating: 4.9,
			ImageURL:    "https://placehold.co/300x400?text=Witcher+3",
			Description: "Geralt of Rivia hunts for his adopted daughter across a war-torn continent.",
			Tags:        []string{"open world", "story rich", "fantasy"},
			Developer:   "CD Projekt Red", Publisher: "CD Projekt", ReleaseDate: "2015-05-19",
		},
		{
			ID: 15, Title: "The Elder Scrolls V: Skyrim", Category: model.CategoryRPG, Price: price("19.99"), Rating: 4.6,
			ImageURL:    "https://placehold.co/300x400?text=Skyrim",
			Description: "Dragons return to the province of Skyrim and only the Dragonborn can stop them.",
			Tags:        []string{"open world", "fantasy", "moddable"},
			Developer:   "Bethesda Game Studios", Publisher: "Bethesda Softworks", ReleaseDate: "2011-11-11",
		},
		{
			ID: 16, Title: "Civilization VI", Category: model.CategoryStrategy, Price: price("29.99"), Rating: 4.5,
			ImageURL:    "https://placehold.co/300x400?text=Civilization+VI",
			Description: "Build an empire to stand the test of time.",
			Tags:        []string{"turn-based", "4x", "historical"},
			Developer:   "Firaxis Games", Publisher: "2K", ReleaseDate: "2016-10-21",
		},
	}
}
