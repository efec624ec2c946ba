package config

import "fmt"

type Config struct {
	Transcript TranscriptConfig `yaml:"transcript"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Study      StudyConfig      `yaml:"study"`
	Export     ExportConfig     `yaml:"export"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Gemini     GeminiConfig     `yaml:"gemini"`
}

type TranscriptConfig struct {
	Endpoint       string   `yaml:"endpoint"`
	Languages      []string `yaml:"languages"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type SummarizerConfig struct {
	ChunkWidth int                    `yaml:"chunk_width"`
	MinChars   int                    `yaml:"min_chars"`
	Styles     map[string]StyleBounds `yaml:"styles"`
}

// StyleBounds are the output-length bounds handed to the summarization
// model for one summary style.
type StyleBounds struct {
	MaxLength int `yaml:"max_length"`
	MinLength int `yaml:"min_length"`
}

type StudyConfig struct {
	MaxBullets       int    `yaml:"max_bullets"`
	MaxQuestions     int    `yaml:"max_questions"`
	MaxBlanks        int    `yaml:"max_blanks"`
	BlankMarker      string `yaml:"blank_marker"`
	MinSentenceWords int    `yaml:"min_sentence_words"`
	MinAnswerLen     int    `yaml:"min_answer_len"`
}

type ExportConfig struct {
	Format   string `yaml:"format"`
	Filename string `yaml:"filename"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}

	switch c.Export.Format {
	case "", "txt", "docx", "both":
	default:
		return fmt.Errorf("export.format must be txt, docx or both, got %q", c.Export.Format)
	}

	if c.Transcript.Endpoint == "" {
		c.Transcript.Endpoint = "https://video.google.com/timedtext"
	}
	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en", "en-US", "en-GB"}
	}
	if c.Transcript.TimeoutSeconds == 0 {
		c.Transcript.TimeoutSeconds = 15
	}
	if c.Summarizer.ChunkWidth == 0 {
		c.Summarizer.ChunkWidth = 2000
	}
	if c.Summarizer.MinChars == 0 {
		c.Summarizer.MinChars = 200
	}
	if c.Study.MaxBullets == 0 {
		c.Study.MaxBullets = 8
	}
	if c.Study.MaxQuestions == 0 {
		c.Study.MaxQuestions = 6
	}
	if c.Study.MaxBlanks == 0 {
		c.Study.MaxBlanks = 6
	}
	if c.Study.BlankMarker == "" {
		c.Study.BlankMarker = "____"
	}
	if c.Study.MinSentenceWords == 0 {
		c.Study.MinSentenceWords = 5
	}
	if c.Study.MinAnswerLen == 0 {
		c.Study.MinAnswerLen = 4
	}
	if c.Export.Format == "" {
		c.Export.Format = "txt"
	}
	if c.Export.Filename == "" {
		c.Export.Filename = "youtube_summary_study_mode.txt"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
