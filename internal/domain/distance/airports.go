package distance

// Airport is one row of the static coordinate table.
type Airport struct {
	IATA      string
	Name      string
	Lat       float64
	Lon       float64
	UTCOffset int // seconds east of UTC, standard time
}

// airportTable covers the airports the claim surface currently serves.
// Coordinates are aerodrome reference points; offsets are standard time
// (fetch windows tolerate DST drift because matching re-checks the
// record's own reported local date).
var airportTable = []Airport{
	{IATA: "AMS", Name: "Amsterdam Schiphol", Lat: 52.3086, Lon: 4.7639, UTCOffset: 3600},
	{IATA: "ARN", Name: "Stockholm Arlanda", Lat: 59.6519, Lon: 17.9186, UTCOffset: 3600},
	{IATA: "ATH", Name: "Athens International", Lat: 37.9364, Lon: 23.9445, UTCOffset: 7200},
	{IATA: "BCN", Name: "Barcelona El Prat", Lat: 41.2971, Lon: 2.0785, UTCOffset: 3600},
	{IATA: "BER", Name: "Berlin Brandenburg", Lat: 52.3667, Lon: 13.5033, UTCOffset: 3600},
	{IATA: "BRU", Name: "Brussels", Lat: 50.9014, Lon: 4.4844, UTCOffset: 3600},
	{IATA: "BUD", Name: "Budapest Ferenc Liszt", Lat: 47.4298, Lon: 19.2611, UTCOffset: 3600},
	{IATA: "CDG", Name: "Paris Charles de Gaulle", Lat: 49.0097, Lon: 2.5479, UTCOffset: 3600},
	{IATA: "CPH", Name: "Copenhagen Kastrup", Lat: 55.6181, Lon: 12.6561, UTCOffset: 3600},
	{IATA: "DUB", Name: "Dublin", Lat: 53.4213, Lon: -6.2701, UTCOffset: 0},
	{IATA: "DXB", Name: "Dubai International", Lat: 25.2532, Lon: 55.3657, UTCOffset: 14400},
	{IATA: "FCO", Name: "Rome Fiumicino", Lat: 41.8003, Lon: 12.2389, UTCOffset: 3600},
	{IATA: "FRA", Name: "Frankfurt am Main", Lat: 50.0333, Lon: 8.5706, UTCOffset: 3600},
	{IATA: "GVA", Name: "Geneva", Lat: 46.2381, Lon: 6.1089, UTCOffset: 3600},
	{IATA: "HEL", Name: "Helsinki Vantaa", Lat: 60.3172, Lon: 24.9633, UTCOffset: 7200},
	{IATA: "IST", Name: "Istanbul", Lat: 41.2753, Lon: 28.7519, UTCOffset: 10800},
	{IATA: "JFK", Name: "New York John F. Kennedy", Lat: 40.6413, Lon: -73.7781, UTCOffset: -18000},
	{IATA: "KEF", Name: "Reykjavik Keflavik", Lat: 63.9850, Lon: -22.6056, UTCOffset: 0},
	{IATA: "LHR", Name: "London Heathrow", Lat: 51.4700, Lon: -0.4543, UTCOffset: 0},
	{IATA: "LIS", Name: "Lisbon Humberto Delgado", Lat: 38.7742, Lon: -9.1342, UTCOffset: 0},
	{IATA: "LYS", Name: "Lyon Saint-Exupery", Lat: 45.7256, Lon: 5.0811, UTCOffset: 3600},
	{IATA: "MAD", Name: "Madrid Barajas", Lat: 40.4983, Lon: -3.5676, UTCOffset: 3600},
	{IATA: "MUC", Name: "Munich Franz Josef Strauss", Lat: 48.3538, Lon: 11.7861, UTCOffset: 3600},
	{IATA: "MXP", Name: "Milan Malpensa", Lat: 45.6306, Lon: 8.7281, UTCOffset: 3600},
	{IATA: "NCE", Name: "Nice Cote d'Azur", Lat: 43.6584, Lon: 7.2159, UTCOffset: 3600},
	{IATA: "OPO", Name: "Porto Francisco Sa Carneiro", Lat: 41.2481, Lon: -8.6814, UTCOffset: 0},
	{IATA: "OSL", Name: "Oslo Gardermoen", Lat: 60.1939, Lon: 11.1004, UTCOffset: 3600},
	{IATA: "OTP", Name: "Bucharest Henri Coanda", Lat: 44.5711, Lon: 26.0850, UTCOffset: 7200},
	{IATA: "PRG", Name: "Prague Vaclav Havel", Lat: 50.1008, Lon: 14.2600, UTCOffset: 3600},
	{IATA: "RIX", Name: "Riga", Lat: 56.9236, Lon: 23.9711, UTCOffset: 7200},
	{IATA: "SVQ", Name: "Seville", Lat: 37.4180, Lon: -5.8931, UTCOffset: 3600},
	{IATA: "TLV", Name: "Tel Aviv Ben Gurion", Lat: 32.0114, Lon: 34.8867, UTCOffset: 7200},
	{IATA: "VIE", Name: "Vienna Schwechat", Lat: 48.1103, Lon: 16.5697, UTCOffset: 3600},
	{IATA: "WAW", Name: "Warsaw Chopin", Lat: 52.1657, Lon: 20.9671, UTCOffset: 3600},
	{IATA: "ZRH", Name: "Zurich Kloten", Lat: 47.4581, Lon: 8.5556, UTCOffset: 3600},
}
