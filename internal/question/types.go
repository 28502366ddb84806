package question

// Bank defines the question bank schema.
type Bank struct {
	Version   int     `yaml:"version"`
	Questions []Entry `yaml:"questions"`
}

// Entry is a single true/false statement in the bank.
type Entry struct {
	Statement string `yaml:"statement"`
	Answer    *bool  `yaml:"answer"`
}
