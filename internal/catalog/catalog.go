package catalog

// Catalog holds the subjects a learner can pick from, each with suggested
// topics, plus the difficulty levels. The topic field on the setup screen
// is free text; the per-subject topics are suggestions, not a whitelist.
type Catalog struct {
	Subjects []Subject `yaml:"subjects"`
	Levels   []string  `yaml:"levels"`
}

// Subject is one study area with its suggested topics.
type Subject struct {
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Subjects: []Subject{
			{Name: "Math", Topics: []string{"Algebra", "Geometry", "Calculus", "Statistics", "Trigonometry"}},
			{Name: "Science", Topics: []string{"Physics", "Chemistry", "Biology", "Astronomy", "Earth Science"}},
			{Name: "History", Topics: []string{"Ancient History", "World Wars", "American History", "European History", "Asian History"}},
			{Name: "English", Topics: []string{"Grammar", "Literature", "Writing Skills", "Poetry", "Shakespeare"}},
			{Name: "Computer Science", Topics: []string{"Programming Basics", "Algorithms", "Web Development", "Data Science", "Artificial Intelligence"}},
		},
		Levels: []string{"Beginner", "Intermediate", "Advanced"},
	}
}

// SubjectNames returns the subject names in catalog order.
func (c Catalog) SubjectNames() []string {
	names := make([]string, len(c.Subjects))
	for i, s := range c.Subjects {
		names[i] = s.Name
	}
	return names
}

// Topics returns the suggested topics for a subject, or nil if the subject
// isn't in the catalog.
func (c Catalog) Topics(subject string) []string {
	for _, s := range c.Subjects {
		if s.Name == subject {
			return s.Topics
		}
	}
	return nil
}
