package model

// Curated song catalogs for the suggestion heuristic. The teaser pulls one
// classic track; highlights pull one from each catalog; the full cut gets
// no song suggestions.

var ClassicSongs = SongList{
	{Title: "At Last", Artist: "Etta James", Mood: "classic", Tempo: "slow"},
	{Title: "L-O-V-E", Artist: "Nat King Cole", Mood: "classic", Tempo: "medium"},
	{Title: "My Girl", Artist: "The Temptations", Mood: "classic", Tempo: "medium"},
	{Title: "My Way", Artist: "Frank Sinatra", Mood: "classic", Tempo: "medium"},
	{Title: "That's Life", Artist: "Frank Sinatra", Mood: "classic", Tempo: "medium"},
	{Title: "I Say a Little Prayer", Artist: "Aretha Franklin", Mood: "classic", Tempo: "medium"},
	{Title: "Can't Take My Eyes off You", Artist: "Frankie Valli", Mood: "romantic", Tempo: "medium"},
	{Title: "Stand By Me", Artist: "Ben E. King", Mood: "classic", Tempo: "slow"},
	{Title: "Fly Me To The Moon", Artist: "Frank Sinatra, Count Basie", Mood: "classic", Tempo: "medium"},
	{Title: "What A Wonderful World", Artist: "Louis Armstrong", Mood: "classic", Tempo: "slow"},
	{Title: "Ain't No Mountain High Enough", Artist: "Marvin Gaye, Tammi Terrell", Mood: "classic", Tempo: "fast"},
	{Title: "I Just Called To Say I Love You", Artist: "Stevie Wonder", Mood: "romantic", Tempo: "medium"},
	{Title: "Strangers In The Night", Artist: "Frank Sinatra", Mood: "classic", Tempo: "medium"},
	{Title: "La Vie En Rose", Artist: "Louis Armstrong And His Orchestra", Mood: "classic", Tempo: "slow"},
	{Title: "Put Your Head on My Shoulder", Artist: "Paul Anka", Mood: "romantic", Tempo: "slow"},
	{Title: "In the Mood", Artist: "Glenn Miller", Mood: "classic", Tempo: "fast"},
	{Title: "It's Been A Long, Long Time", Artist: "Harry James", Mood: "classic", Tempo: "medium"},
	{Title: "I Don't Want To Set The World On Fire", Artist: "The Ink Spots", Mood: "classic", Tempo: "slow"},
	{Title: "Dream A Little Dream Of Me", Artist: "Ella Fitzgerald, Louis Armstrong", Mood: "classic", Tempo: "slow"},
	{Title: "It's A Rather Long Time", Artist: "Kitty Kallen, The Harry James Orchestra", Mood: "classic", Tempo: "medium"},
	{Title: "We'll Meet Again", Artist: "Vera Lynn", Mood: "classic", Tempo: "medium"},
	{Title: "Unchained Melody", Artist: "The Righteous Brothers", Mood: "romantic", Tempo: "slow"},
	{Title: "That's Amore", Artist: "Dean Martin", Mood: "classic", Tempo: "medium"},
	{Title: "Orange Colored Sky", Artist: "Nat King Cole", Mood: "classic", Tempo: "fast"},
	{Title: "Cheek To Cheek", Artist: "Fred Astaire", Mood: "classic", Tempo: "medium"},
	{Title: "The Way You Look Tonight", Artist: "Tony Bennett", Mood: "romantic", Tempo: "slow"},
	{Title: "Unforgettable", Artist: "Nat King Cole", Mood: "romantic", Tempo: "slow"},
	{Title: "Dream A Little Dream Of Me", Artist: "Doris Day", Mood: "classic", Tempo: "slow"},
	{Title: "Can't Help Falling In Love", Artist: "Elvis Presley", Mood: "romantic", Tempo: "slow"},
	{Title: "A Summer Place", Artist: "Andy Williams", Mood: "romantic", Tempo: "slow"},
	{Title: "More (Theme From Mondo Cane)", Artist: "Frank Sinatra, Count Basie", Mood: "classic", Tempo: "medium"},
}

var InstrumentalSongs = SongList{
	{Title: "II Allemande", Artist: "Brooklyn Classical", Mood: "classical", Tempo: "medium"},
	{Title: "Scorched Earth", Artist: "Maya Beisitzman", Mood: "classical", Tempo: "medium"},
	{Title: "Sojourner", Artist: "Ardie Son", Mood: "classical", Tempo: "medium"},
	{Title: "Winterlight", Artist: "Brianna Tam", Mood: "classical", Tempo: "slow"},
	{Title: "Arvo Pärt Spiegel im Spiegel for Cello and Piano", Artist: "Edward Arron & Jeewon Park at the Clark", Mood: "classical", Tempo: "slow"},
	{Title: "Come Back Home", Artist: "Ardie Son", Mood: "classical", Tempo: "medium"},
	{Title: "IV Sarabande", Artist: "Brooklyn Classical", Mood: "classical", Tempo: "slow"},
	{Title: "Gymnopédie no 1", Artist: "Romi Kopelman", Mood: "classical", Tempo: "slow"},
	{Title: "Hallelujah", Artist: "Unknown", Mood: "classical", Tempo: "slow"},
	{Title: "Bésame Mucho on Harp & Cello", Artist: "Unknown", Mood: "classical", Tempo: "medium"},
	{Title: "Enter Reworked", Artist: "Christopher Galovan", Mood: "classical", Tempo: "medium"},
	{Title: "Reminiscence", Artist: "Ben Winwood", Mood: "classical", Tempo: "slow"},
	{Title: "Flower Duet Lakmé", Artist: "Hawkins", Mood: "classical", Tempo: "medium"},
}

var ModernSongs = SongList{
	{Title: "Innerbloom", Artist: "RÜFÜS DU SOL", Mood: "modern", Tempo: "medium"},
	{Title: "Freeze", Artist: "Kygo", Mood: "modern", Tempo: "medium"},
	{Title: "Feel So Close (Radio Edit)", Artist: "Calvin Harris", Mood: "modern", Tempo: "fast"},
	{Title: "Saturday Night", Artist: "The Underdog Project", Mood: "modern", Tempo: "fast"},
	{Title: "Can't Hold Us (feat. Ray Dalton)", Artist: "Macklemore & Ryan Lewis", Mood: "modern", Tempo: "fast"},
	{Title: "Hold My Hand", Artist: "Jess Glynne", Mood: "modern", Tempo: "fast"},
	{Title: "Heaven Is A Place On Earth (Official Music Video)", Artist: "W&W x AXMO", Mood: "modern", Tempo: "fast"},
	{Title: "Nalu", Artist: "Deep Chills, Brendan Mills", Mood: "modern", Tempo: "medium"},
}
