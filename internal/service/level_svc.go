package service

// Level tiers. Promotion requires BOTH the judged-count and accuracy
// thresholds of the tier; levels never go back down once reached, even
// if accuracy later drops.
const (
	LevelRookie       = 1
	LevelAlmostHuman  = 2
	LevelBotBuster    = 3
	LevelValleyGenius = 4
)

type levelThreshold struct {
	level     int
	minJudged int
	minAcc    float64
}

// Descending order so ComputeLevel can return the first tier matched.
var levelThresholds = []levelThreshold{
	{LevelValleyGenius, 500, 85},
	{LevelBotBuster, 100, 70},
	{LevelAlmostHuman, 20, 50},
}

var levelNames = []string{"Rookie", "Almost Human", "Bot Buster", "Valley Genius"}

type LevelService struct{}

func NewLevelService() *LevelService {
	return &LevelService{}
}

// ComputeLevel returns the highest tier whose judged-count AND accuracy
// thresholds are both met. accuracy is a 0-100 percentage.
func (s *LevelService) ComputeLevel(totalJudged int, accuracy float64) int {
	for _, t := range levelThresholds {
		if totalJudged >= t.minJudged && accuracy >= t.minAcc {
			return t.level
		}
	}
	return LevelRookie
}

// NextLevel applies the monotonicity rule: a voter keeps their current
// level if the freshly computed one is lower.
func (s *LevelService) NextLevel(current, totalJudged int, accuracy float64) int {
	computed := s.ComputeLevel(totalJudged, accuracy)
	return max(current, computed)
}

// LevelName returns the display name for a level, defaulting to the
// first tier for anything out of range.
func LevelName(level int) string {
	if level < 1 || level > len(levelNames) {
		return levelNames[0]
	}
	return levelNames[level-1]
}
