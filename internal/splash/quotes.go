package splash

// Quotes is the pool the splash screen picks from.
var Quotes = []string{
	"Happiness can be found even in the darkest of times, if one only remembers to turn on the light.",
	"The future rewards those who press on. I don’t have time to feel sorry for myself.",
	"It always seems impossible until it’s done.",
	"Do the best you can until you know better. Then when you know better, do better.",
	"In the middle of difficulty lies opportunity.",
	"Keep your face to the sunshine and you cannot see a shadow.",
	"Success is not final, failure is not fatal: it is the courage to continue that counts.",
	"You have power over your mind — not outside events. Realize this, and you will find strength.",
	"One child, one teacher, one book, one pen can change the world.",
	"Your time is limited, so don’t waste it living someone else’s life.",
	"All we have to decide is what to do with the time that is given to us.",
	"What lies behind us and what lies before us are tiny matters compared to what lies within us.",
	"It does not matter how slowly you go as long as you do not stop.",
	"The most difficult thing is the decision to act, the rest is merely tenacity.",
	"Faith is taking the first step even when you don’t see the whole staircase.",
	"How wonderful it is that nobody need wait a single moment before starting to improve the world.",
	"Believe you can and you’re halfway there.",
	"Turn your wounds into wisdom.",
	"You are never too old to set another goal or to dream a new dream.",
	"Learning never exhausts the mind.",
}
