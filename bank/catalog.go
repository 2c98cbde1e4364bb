package bank

// The factory catalog, 99 programs in bank order plus the "Default"
// sentinel. The sentinel must stay last and must keep NoStyle/NoCategory
// so no filter ever selects it; it is reserved for an explicit
// reset-to-default path. Curation rule: every style/category pair has
// between 1 and 10 programs, one strip cell per program.
var catalog = [...]Preset{
	// retro
	{Retro, "Vince Gate", Kit},
	{Retro, "Neophile", Kit},
	{Retro, "Blue House", Kit},
	{Retro, "Claptrap", Perc},
	{Retro, "Eighties Top", Drums},
	{Retro, "Analog Eight", Kit},
	{Retro, "Cowbell Hero", Perc},
	{Retro, "Linn Out", Drums},
	{Retro, "Boss Nova", Kit},
	{Retro, "Zap Perc", Perc},
	{Retro, "Syndrome", Drums},
	{Retro, "Tin Machine", Kit},
	{Retro, "Disco Block", Perc},
	{Retro, "Drum Cake", Drums},
	{Retro, "Gated Earth", Kit},
	{Retro, "Laser Tom", Perc},
	{Retro, "Retrofit", Drums},
	{Retro, "Simmons Creek", Kit},
	{Retro, "Handviber", Perc},
	{Retro, "Pulse Train", Drums},
	{Retro, "Tape Stop", Drums},
	// world
	{World, "Tabla House", Kit},
	{World, "Djembe Solo", Perc},
	{World, "Taiko Hall", Drums},
	{World, "Gamelan Gate", Kit},
	{World, "Clay Pot", Perc},
	{World, "Frame Story", Drums},
	{World, "Udu Club", Kit},
	{World, "Agogo Run", Perc},
	{World, "Dhol Pusher", Drums},
	{World, "Caravan", Kit},
	{World, "Shekere", Perc},
	{World, "Bodhran Mist", Drums},
	{World, "Monsoon", Kit},
	{World, "Temple Block", Perc},
	{World, "Cajon Street", Drums},
	{World, "Kalimba Bay", Kit},
	{World, "Bata Line", Perc},
	{World, "Quarter Tone", Drums},
	{World, "Mallet Field", Kit},
	{World, "Rain Stick", Perc},
	// real
	{Real, "Studio One", Kit},
	{Real, "Conga Line", Perc},
	{Real, "Deep Pocket", Drums},
	{Real, "Dry Seventies", Kit},
	{Real, "Timbale Tap", Perc},
	{Real, "Room Mike", Drums},
	{Real, "Maple Room", Kit},
	{Real, "Bongo Fury", Perc},
	{Real, "Loose Snare", Drums},
	{Real, "Jazz Brush", Kit},
	{Real, "Wood Shed", Perc},
	{Real, "Brushed Steel", Drums},
	{Real, "Bebop Corner", Kit},
	{Real, "Castanet", Perc},
	{Real, "Basement Tape", Drums},
	{Real, "Tight Ship", Kit},
	{Real, "Guiro Park", Perc},
	{Real, "Vintage Tubs", Drums},
	{Real, "Warm Booth", Kit},
	{Real, "Big Sky", Drums},
	// rock
	{Rock, "Stadium Gate", Kit},
	{Rock, "Anvil Chorus", Perc},
	{Rock, "Led Foot", Drums},
	{Rock, "Power Station", Kit},
	{Rock, "Crash Course", Perc},
	{Rock, "Mosh Pit", Drums},
	{Rock, "Heavy Crown", Kit},
	{Rock, "Cowpuncher", Perc},
	{Rock, "Halftime Hero", Drums},
	{Rock, "Arena Floor", Kit},
	{Rock, "Ride Out", Perc},
	{Rock, "Blast Beat", Drums},
	{Rock, "Grunge Bin", Kit},
	{Rock, "China Hat", Perc},
	{Rock, "Iron Lung", Drums},
	{Rock, "Double Down", Kit},
	{Rock, "Black Sand", Drums},
	{Rock, "Tom Thunder", Kit},
	{Rock, "Shred Shed", Kit},
	// fx
	{FX, "Space Junk", Kit},
	{FX, "Droplet", Perc},
	{FX, "Thunder Dome", Drums},
	{FX, "Robot Parade", Kit},
	{FX, "Ray Gun", Perc},
	{FX, "Quake Lab", Drums},
	{FX, "Glitch Garden", Kit},
	{FX, "Sonar Ping", Perc},
	{FX, "Doom Drone", Drums},
	{FX, "Circuit Bent", Kit},
	{FX, "Tesla Coil", Perc},
	{FX, "Meteor Rain", Drums},
	{FX, "Modem Song", Kit},
	{FX, "Bit Crush", Perc},
	{FX, "Arc Welder", Drums},
	{FX, "Static Field", Kit},
	{FX, "Vapor Trail", Perc},
	{FX, "End Credits", Drums},
	{FX, "Photon Belt", Kit},

	{NoStyle, "Default", NoCategory},
}
