package router

// greetings only match as the entire normalized message; "hello doctor"
// must still reach the query pipeline.
var greetings = map[string]bool{
	"hi":             true,
	"hii":            true,
	"hello":          true,
	"helloo":         true,
	"hey":            true,
	"greetings":      true,
	"good morning":   true,
	"good afternoon": true,
	"good evening":   true,
}

var infoKeywords = []string{
	"what can you do",
	"what do you do",
	"who are you",
	"what are you",
	"help me",
	"how to use",
	"capabilities",
	"features",
}

// documentKeywords pull a message toward the uploaded-document pipeline even
// when it also mentions clinic vocabulary.
var documentKeywords = []string{
	"document",
	"pdf",
	"upload",
	"file",
	"chapter",
	"textbook",
	"study",
	"material",
}

var schemaKeywords = []string{
	"doctor",
	"doctors",
	"clinic",
	"clinics",
	"appointment",
	"appointments",
	"slot",
	"slots",
	"notice",
	"notices",
	"exception",
	"holiday",
}
