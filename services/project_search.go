package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"labourlink/constants"
	"labourlink/models"
)

// ScoredProject is a project with its search relevance score
type ScoredProject struct {
	Project models.Project `json:"project"`
	Score   int            `json:"score"`
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// parseSkillType maps free-text queries onto a skill requirement
func parseSkillType(query string) string {
	skilledKeywords := []string{"skilled", "mason", "electrician", "plumber", "carpenter", "welder", "painter"}
	unskilledKeywords := []string{"unskilled", "helper", "labour", "labourer", "loading", "general"}

	normalizedQuery := normalizeInput(query)

	skilledMatcher := createMatcher(skilledKeywords)
	unskilledMatcher := createMatcher(unskilledKeywords)

	skilledMatch := skilledMatcher.Closest(normalizedQuery)
	unskilledMatch := unskilledMatcher.Closest(normalizedQuery)

	if skilledMatch != "" && strings.Contains(normalizedQuery, skilledMatch) {
		return constants.SkillTypeSkilled
	}
	if unskilledMatch != "" && strings.Contains(normalizedQuery, unskilledMatch) {
		return constants.SkillTypeUnskilled
	}
	return ""
}

// prepareCityList builds the unique normalized city list for closestmatch
func prepareCityList(projects []models.Project) []string {
	uniqueValues := make(map[string]bool)

	for _, p := range projects {
		if p.City != "" {
			uniqueValues[normalizeInput(p.City)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculateProjectScore(query string, p models.Project, cmCity *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if skill := parseSkillType(normalizedQuery); skill != "" && skill == p.SkillRequired {
		score += 20
	}

	if cmCity.Closest(normalizedQuery) == normalizeInput(p.City) {
		score += 13
	}

	if strings.Contains(normalizedQuery, normalizeInput(p.SiteName)) ||
		calculateSimilarity(normalizedQuery, normalizeInput(p.SiteName)) > 0.7 {
		score += 10
	}

	maxSkillScore := 12
	skillScore := 0
	for _, s := range p.SkillsNeeded {
		normalizedSkill := normalizeInput(s)
		if calculateSimilarity(normalizedQuery, normalizedSkill) > 0.7 ||
			strings.Contains(normalizedQuery, normalizedSkill) {
			skillScore += 4
			if skillScore >= maxSkillScore {
				break
			}
		}
	}
	score += skillScore

	return score
}

// SearchProjects scores active projects against a free-text query and
// returns them ranked
func SearchProjects(query string, projects []models.Project) []ScoredProject {
	cmCity := createMatcher(prepareCityList(projects))

	var scored []ScoredProject
	scoreCh := make(chan ScoredProject, len(projects))
	var wg sync.WaitGroup

	for _, p := range projects {
		wg.Add(1)
		go func(p models.Project) {
			defer wg.Done()
			score := calculateProjectScore(query, p, cmCity)
			if score > 0 {
				scoreCh <- ScoredProject{
					Project: p,
					Score:   score,
				}
			}
		}(p)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for sp := range scoreCh {
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
