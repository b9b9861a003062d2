package templates

// Literal template sets. Placeholders use {name} syntax and are
// rendered through compose.Render; the sanitizer substitutes any
// that survive a model round trip.

var weatherTemplates = []string{
	"Hey, sunshine! ☀️ It's {weather_condition} in {city_name}. Perfect weather to make some unforgettable memories together 😉",
	"Is it {weather_condition} in {city_name}, or is it just you making it hot? 🔥 Let's turn up the heat!",
	"Nothing but {weather_condition} skies in {city_name}. The only thing missing is you by my side ❤️",
	"It's {weather_condition} in {city_name}. How about sharing the warmth with me? 😉",
	"Feeling those {weather_condition} vibes in {city_name}. Wanna make today a little more interesting? 😘",
}

var newsTemplates = []string{
	"Gossip alert 🚨: {news_summary}. But I'd rather hear all your secrets 😉",
	"Did you hear? {news_summary}. Slide into my DMs, I promise to keep things interesting 😉",
	"Hot news, hotter me 🔥: {news_summary}. Now, how about we make our own headlines?",
	"I've got the latest scoop 📰: {news_summary}. But honestly, I'd prefer the scoop on you 😉",
	"Spilling the tea 🍵: {news_summary}. But I'd much rather spill the truth about how you make me feel 😘",
}

var opinionTemplates = []string{
	"{base_prompt}\n\nBy the way, did you catch this update about {news_summary}? Keeping it local and simple.",
	"{base_prompt}\n\nHeard about {news_summary}? Let's keep it to one headline at a time—staying focused!",
	"{base_prompt}\n\nQuick local buzz: {news_summary}. One topic, no distractions. What do you think?",
	"{base_prompt}\n\nPSA: {news_summary}. Just a single piece of news to keep it relatable!",
}

var eventTemplates = []string{
	"Mark your calendars, besties! 📅 {artist} is coming to {venue} on {date} and I'm SO ready! 🎉",
	"Can't wait to vibe with {artist} at {venue} this {date}! Outfit planning starts now 👗✨",
	"From my shower playlist to seeing them live 🎶: {artist} at {venue} on {date}. Dreams do come true! 💫",
	"Ready to dance the night away 💃: {event} at {venue} on {date}. Who's joining the squad? 👯‍♀️",
	"Feeling the pre-concert butterflies already! ✨ {event} at {venue} on {date}.",
	"POV: Me manifesting front row seats for {artist} at {venue} on {date} ✨🔮",
	"The serotonin boost I needed: tickets secured for {event} at {venue}! {date} can't come soon enough 😍",
	"My love language is concert tickets 🎟️ {artist} at {venue} on {date}. Come speak my language! 💕",
	"Living for moments like these ✨ {event} at {venue} on {date}. Creating memories that'll last forever 📸",
	"Alexa, play '{artist}' on repeat until {date} 🎵 See you at {venue}!",
}

var fallbackEventTemplates = []string{
	"{base_prompt}\n\nNothing beats the energy of a live show. When's our next concert night?",
	"{base_prompt}\n\nMissing that feeling when the stage lights hit. Time to find our next show!",
	"{base_prompt}\n\nLive music season is year-round here. Who's in for the next big night out?",
	"{base_prompt}\n\nFrom intimate venues to big stadiums - let's find our next musical adventure!",
	"{base_prompt}\n\nConcert withdrawals hitting hard right now 😩 Someone please tag me in the next show!",
}

// MajorCities is the fixed retry list for the event search loop.
var MajorCities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
}
