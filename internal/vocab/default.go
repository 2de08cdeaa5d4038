package vocab

// defaultWords is the built-in emotion vocabulary used when no trained
// vocab.json is supplied. It covers common function words plus the
// emotion-heavy terms the model was trained around. For accurate
// predictions the vocabulary file from the training run should be
// preferred.
var defaultWords = []string{
	"i", "you", "he", "she", "it", "we", "they",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must",
	"can", "cannot", "cant",
	"the", "a", "an", "and", "or", "but", "if", "then",
	"not", "no", "yes",
	"happy", "sad", "angry", "fear", "scared", "afraid",
	"joy", "joyful", "excited",
	"upset", "frustrated", "annoyed", "mad",
	"love", "hate", "like", "dislike",
	"good", "bad", "great", "terrible", "awful",
	"feel", "feeling", "felt",
	"very", "really", "so", "too", "much",
	"sorry", "please", "thank", "thanks",
	"help", "need", "want", "wish",
	"think", "thought", "know", "believe",
	"see", "look", "hear", "listen",
	"go", "come", "get", "make", "take",
	"day", "time", "way", "people", "thing",
	"work", "life", "world", "home", "friend",
	"tell", "say", "said", "ask", "asked",
	"just", "now", "today", "never", "always",
	"about", "after", "before", "because", "when", "where",
	"what", "why", "how", "who", "which",
}

// Default returns the built-in emotion vocabulary.
func Default() *Vocabulary {
	return New(defaultWords)
}
