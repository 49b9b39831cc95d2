package domain

// Section identifies one checklist item a README is scored against.
type Section string

const (
	SectionTitle        Section = "title"
	SectionTagline      Section = "tagline"
	SectionBadges       Section = "badges"
	SectionInstall      Section = "install"
	SectionQuickstart   Section = "quickstart"
	SectionUsage        Section = "usage"
	SectionConfig       Section = "config"
	SectionCI           Section = "ci"
	SectionSecurity     Section = "security"
	SectionLicense      Section = "license"
	SectionContributing Section = "contributing"
	SectionTOC          Section = "toc"
	SectionRoadmap      Section = "roadmap"
	SectionFAQ          Section = "faq"
	SectionAltImages    Section = "altImages"
	SectionLinks        Section = "links"
)

// AllSections enumerates every section kind in scoring order.
var AllSections = []Section{
	SectionTitle, SectionTagline, SectionBadges, SectionInstall,
	SectionQuickstart, SectionUsage, SectionConfig, SectionCI,
	SectionSecurity, SectionLicense, SectionContributing, SectionTOC,
	SectionRoadmap, SectionFAQ, SectionAltImages, SectionLinks,
}

// IsValid reports whether s is one of the sixteen known sections.
func (s Section) IsValid() bool {
	for _, known := range AllSections {
		if s == known {
			return true
		}
	}
	return false
}

// MaxScore is the ceiling of every ScoreReport.
const MaxScore = 100

// ScoreReport is the result of evaluating one document.
type ScoreReport struct {
	Path    string    `json:"path,omitempty"`
	Score   int       `json:"score"`
	Max     int       `json:"max"`
	Hits    []Section `json:"hits"`
	Missing []Section `json:"missing"`
}

// Grade returns the letter grade for the report score.
func (r ScoreReport) Grade() string { return GradeFor(r.Score) }

// Passes reports whether the score meets threshold.
func (r ScoreReport) Passes(threshold int) bool { return r.Score >= threshold }

// GradeFor maps a 0-100 score to a letter grade from A+ to F.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// BadgeColor returns the shields.io color name for score.
func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// ScoreEntry is one line of a README's score history.
type ScoreEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Path       string `json:"path"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
}
