package scoring

import "strings"

// CategorizeRole maps a free-text job title to a role category by scanning
// the keyword catalog in declaration order. The first category with any
// substring match wins; the order of the catalog is part of the contract.
func (e *Engine) CategorizeRole(jobTitle string) string {
	title := strings.ToLower(jobTitle)

	for _, role := range e.data.RoleCatalog {
		for _, keyword := range role.Keywords {
			if strings.Contains(title, keyword) {
				return role.Category
			}
		}
	}

	return defaultCategory
}

// ExperienceTier returns the tier whose inclusive year range contains the
// given years of experience. Values beyond every band fall into the
// highest tier rather than erroring.
func (e *Engine) ExperienceTier(years int) string {
	for _, band := range e.data.ExperienceBands {
		if years >= band.Min && years <= band.Max {
			return band.Tier
		}
	}

	return "principal"
}
