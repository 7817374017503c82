package service

import "fmt"

// Each prompt embeds the caller's JSON verbatim and describes the document
// the frontend renders for that module.

const calendarPrompt = `You are a scheduling assistant for a digital nomad.
Analyze these calendar events for overlaps, travel clashes and work that falls outside reasonable hours:
%s

Respond only with JSON of the form
{"hasConflict": boolean, "conflictDetails": string, "suggestedSolutions": [{"description": string, "pros": [string], "cons": [string]}]}`

const coworkingPrompt = `You are a coworking space advisor for remote workers.
Recommend coworking spaces that match these criteria:
%s

Respond only with JSON of the form
{"recommendations": [{"name": string, "location": string, "rating": string, "price": string, "internetSpeed": string, "amenities": [string], "matchingCriteria": [string], "potentialDrawbacks": [string], "rank": number}], "recommendationSummary": string}`

const timeZonePrompt = `You coordinate meetings across distributed teams.
Find the best meeting times for this team:
%s

Respond only with JSON of the form
{"optimalMeetingTimes": [{"startTime": string, "endTime": string, "impactAssessment": [{"location": string, "localTime": string, "impact": "Optimal" | "Acceptable" | "Challenging"}], "reasoning": string}], "jetlagManagementTips": [string]}`

const budgetPrompt = `You are a financial advisor for digital nomads.
The traveler currently lives in %q and plans to move to %q. Their monthly budget limit is %s.
Analyze these expenses:
%s

Respond only with JSON of the form
{"categorizedExpenses": [{"category": string, "amount": number, "percentage": number, "workRelated": boolean}], "comparisonToAverage": {"status": "Above average" | "Below average" | "Average", "details": string}, "recommendations": [{"description": string, "potentialSavings": number, "implementationDifficulty": "Easy" | "Medium" | "Hard"}]}`

const communityPrompt = `You connect digital nomads with local communities.
Recommend communities, meetups and networking groups for this profile:
%s

Respond only with JSON of the form
{"recommendations": [{"name": string, "type": string, "relevanceScore": number, "description": string, "contactMethod": string, "matchingInterests": [string], "networkingApproach": string}]}`

const legalPrompt = `You provide general legal orientation for remote workers abroad. You are not a lawyer.
Answer this question about visas, taxes and the legality of remote work:
%s

Respond only with JSON of the form
{"visaRequirements": {"requiredVisa": string, "stayDuration": string, "applicationProcess": string, "requiredDocuments": [string], "processingTime": string, "fees": string}, "taxImplications": {"taxStatus": string, "reportingRequirements": string, "treatiesSummary": string, "keyConsiderations": [string]}, "workLegality": {"legalStatus": string, "restrictions": [string], "permissions": [string]}, "authoritativeSources": [{"name": string, "url": string, "description": string}], "disclaimer": string}`

const assistantPrompt = `You are the assistant of a planner for digital nomads. The planner has calendar, coworking, timezone, budget, community and legal modules.
Answer this request:
%q

Respond only with JSON of the form
{"response": string, "relatedModules": [string], "suggestedActions": [string]}`

func budgetLimitText(limit *int64) string {
	if limit == nil {
		return "not set"
	}
	return fmt.Sprintf("%d", *limit)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
