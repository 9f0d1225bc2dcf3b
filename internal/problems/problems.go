// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package problems holds the static scenario catalog and the validation
// rules for decision-log submissions.
package problems

import "fmt"

// Question describes one answer field of a scenario. Max is display
// metadata for clients; server-side validation always uses Limits.
type Question struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Max   int    `json:"max"`
}

// Problem is one fixed scenario prompt.
type Problem struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Track     string     `json:"track"`
	Prompt    string     `json:"prompt"`
	Questions []Question `json:"questions"`
}

// PromptID is the stable reference stored with each submission.
func (p *Problem) PromptID() string {
	return fmt.Sprintf("problem-%d", p.ID)
}

// Limits is the canonical per-field character budget, applied to every
// submission regardless of problem. Changing a budget is a product
// decision, not a tuning knob.
var Limits = map[string]int{
	"first_action":        280,
	"why_first":           280,
	"second_action":       280,
	"why_second":          280,
	"third_action":        280,
	"signals_data_first":  280,
	"wont_do":             450,
	"biggest_risk":        350,
	"verify_and_rollback": 350,
	"with_more_time":      280,
}

// AnswerFields lists the answer fields in validation-report order.
var AnswerFields = []string{
	"first_action",
	"why_first",
	"second_action",
	"why_second",
	"third_action",
	"signals_data_first",
	"wont_do",
	"biggest_risk",
	"verify_and_rollback",
	"with_more_time",
}

// Required lists every field a submission must carry, in the order
// missing fields are reported.
var Required = append(append([]string{"email"}, AnswerFields...), "attest_original")

// ByID looks up a problem in the catalog.
func ByID(id int) (*Problem, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

// Default returns the scenario used when a submission names no problem.
func Default() *Problem {
	return &catalog[0]
}

// All returns the full catalog.
func All() []Problem {
	return catalog
}

var catalog = []Problem{
	{
		ID:    1,
		Title: "PROBLEM #1 — BACKEND / FULL-STACK ENGINEER",
		Track: "Backend/Full-Stack",
		Prompt: `You inherit a payment processing system handling $2M/day. For the past week, latency spikes to 3+ seconds during peak hours (2–4pm), causing 2–3% of transactions to timeout.

You have:
• 2 weeks
• One junior engineer (started 3 months ago)
• No budget for new infrastructure
• Access to logs, metrics, and the codebase

The situation:
• CEO wants a fix before a board meeting in 10 days
• CTO wants root cause understood before any fix ships
• The on-call engineer who knew the system best quit last month`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    2,
		Title: "PROBLEM #2 — FRONTEND ENGINEER",
		Track: "Frontend",
		Prompt: `Your company's checkout page has a 23% cart abandonment rate on mobile. Analytics show users drop off at the payment form. The PM says "just make it faster." The designer says "we need a complete redesign." You have data showing the form takes 4 taps too many.

You have:
• 1 week before Black Friday (biggest sales day)
• React codebase, no TypeScript, 200+ components
• Designer available for 2 hours total
• Cannot change the backend or payment provider

The situation:
• Marketing already announced "seamless mobile checkout"
• Last sprint's "quick fix" broke Safari and took 3 days to debug
• The PM wants to add Apple Pay; the CTO says "no new features until stability"`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    3,
		Title: "PROBLEM #3 — SRE / PLATFORM / DEVOPS ENGINEER",
		Track: "SRE/DevOps",
		Prompt: `Your main database is at 89% disk capacity and growing 2% per day. You have ~5 days before writes start failing. The database holds user data for 2M active users.

You have:
• No budget approved yet (finance review takes 2 weeks minimum)
• One junior SRE (hasn't done a production migration before)
• Current infra: single Postgres instance, no read replicas, daily backups only
• 4 hours of approved maintenance window per month (already used 2 hours)

The situation:
• Engineering wants to archive old data; Legal says "we must retain everything for 7 years"
• A migration to bigger instance requires 2+ hours downtime
• The last "quick storage fix" corrupted an index and caused a 6-hour outage
• CEO asks: "Why didn't we plan for this?"`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    4,
		Title: "PROBLEM #4 — MOBILE ENGINEER (iOS / Android)",
		Track: "Mobile",
		Prompt: `Your app's average rating dropped from 4.6 to 3.8 stars over 2 weeks. Reviews mention "battery drain" and "app crashes when backgrounded." The CEO is panicking because a competitor just hit 4.9 stars.

You have:
• 5 days until the App Store threatens removal for crash rate >2%
• Current crash rate: 3.1% (was 0.4% before last release)
• Crashlytics shows crashes in 12 different files, no clear pattern
• The release included a new "background sync" feature the PM insisted on

The situation:
• Rolling back removes the background sync feature that 3 enterprise clients are already using
• The engineer who built background sync is on paternity leave
• QA has no automated tests; they test on 2 devices (iPhone 14, Pixel 7)
• Android crashes are 4x higher than iOS`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    5,
		Title: "PROBLEM #5 — DATA / ML ENGINEER",
		Track: "Data/ML",
		Prompt: `Your recommendation model's click-through rate dropped 35% over 6 weeks. Nobody changed the model. Product says "users are just bored." Data team says "the data looks fine." But revenue from recommendations is down $400k/month.

You have:
• 2 weeks to diagnose and fix (board meeting)
• Access to training data, feature pipelines, and model weights
• One data analyst (strong SQL, no ML experience)
• Model was trained 8 months ago; no retraining pipeline exists

The situation:
• Product launched a new "category" 2 months ago with different data format
• The original ML engineer documented nothing and left
• Sales is promising clients "AI-powered personalization" in contracts being signed this week
• Your manager asks: "Is this a data problem or a model problem?"`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    6,
		Title: "PROBLEM #6 — SECURITY ENGINEER",
		Track: "Security",
		Prompt: `Your security scanner flags a critical vulnerability (CVE score 9.8) in a library used by your authentication service. The patch requires upgrading from Node 14 to Node 18. Your auth service hasn't been updated in 2 years.

You have:
• 72 hours before security audit (failing = losing enterprise contract worth $2M/year)
• No staging environment for auth service (was "temporary" 18 months ago)
• One backend engineer available (not the original author)
• 50+ microservices depend on this auth service

The situation:
• The quick fix (WAF rule) blocks the exploit but also blocks 5% of legitimate logins
• A full upgrade last year broke SSO for 3 days and caused customer churn
• Compliance requires patching critical CVEs within 30 days; you're at day 25
• CTO asks: "Can we just accept the risk until after the audit?"`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    7,
		Title: "PROBLEM #7 — QA / TEST ENGINEER",
		Track: "QA/Test",
		Prompt: `The team wants to ship a major feature Friday. It's Wednesday. You've found a bug that corrupts user data 1 in 500 times—but only in a specific sequence of actions that takes 15 minutes to reproduce. The PM says "that's an edge case, ship it."

You have:
• 48 hours until the release deadline
• No automated tests for this feature (team "didn't have time")
• Bug repro steps documented, but dev says "works on my machine"
• One dev available to fix, but they didn't write this code

The situation:
• Sales promised this feature to a client going live Monday
• The last time QA blocked a release, the PM complained to the VP
• The corrupted data bug would affect ~200 users per day based on traffic
• The feature passed all unit tests and manual test cases`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What signals/data do you check first? What are you trying to learn?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you verify success? What's your rollback plan?", Max: 350},
			{Name: "with_more_time", Label: "If you had 2 more weeks, what would you do differently?", Max: 280},
		},
	},
	{
		ID:    8,
		Title: "PROBLEM #8 — ENGINEERING MANAGER",
		Track: "Engineering Manager",
		Prompt: `Your best engineer (Staff level, 4 years at company) just told you privately: "I got an offer for 40% more. I'll stay if I get promoted to Principal and work on the ML project instead of maintenance." Your team owns critical maintenance. You have no budget for backfill.

You have:
• 1 week before they need an answer
• No Principal roles currently approved (headcount freeze)
• The ML team already has a waitlist of engineers wanting to transfer
• This engineer is the only one who understands the legacy billing system

The situation:
• Losing them means 6+ months of knowledge transfer to someone new
• Their current work is "boring" but critical—billing processes $10M/month
• HR says matching salary is "not possible" outside of promotion
• Two junior engineers on your team look up to this person; if they leave, juniors might too`,
		Questions: []Question{
			{Name: "first_action", Label: "What do you do this week?", Max: 350},
			{Name: "why_first", Label: "Why this approach?", Max: 280},
			{Name: "second_action", Label: "What do you do this month?", Max: 350},
			{Name: "why_second", Label: "Why this timeline?", Max: 280},
			{Name: "third_action", Label: "How do you handle the conversation with the engineer?", Max: 350},
			{Name: "signals_data_first", Label: "What information do you gather before responding?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you protect the team if they leave anyway?", Max: 350},
			{Name: "with_more_time", Label: "What systemic changes would prevent this situation?", Max: 280},
		},
	},
	{
		ID:    9,
		Title: "PROBLEM #9 — JUNIOR / ENTRY-LEVEL ENGINEER",
		Track: "Junior/Entry-Level",
		Prompt: `You just joined a team 3 weeks ago. Your first real task: add a "forgot password" feature to the app. The spec is one paragraph and says "follow the existing auth patterns." You look at the auth code and it's 2,000 lines with no comments.

You have:
• 1 week deadline
• The senior who assigned this is on vacation, back in 5 days
• Slack access to the team, but they seem very busy
• You found a tutorial online that does something similar

The situation:
• You're not sure if the reset link should expire in 15 minutes or 24 hours (spec doesn't say)
• The existing code uses a pattern you've never seen; you don't know if it's clever or wrong
• You don't want to ask "dumb questions" but you're stuck
• There's a PR from 6 months ago that added "password reset" but was never merged—no comments why`,
		Questions: []Question{
			{Name: "first_action", Label: "What's the first thing you do?", Max: 280},
			{Name: "why_first", Label: "Why this first?", Max: 280},
			{Name: "second_action", Label: "What's the second thing you do?", Max: 280},
			{Name: "why_second", Label: "Why this second?", Max: 280},
			{Name: "third_action", Label: "What's the third thing you do?", Max: 280},
			{Name: "signals_data_first", Label: "What information do you need to unblock yourself?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you know when you're done? How do you get feedback?", Max: 350},
			{Name: "with_more_time", Label: "What would you do differently if you had more experience?", Max: 280},
		},
	},
	{
		ID:    10,
		Title: "PROBLEM #10 — PRODUCT ENGINEER / GENERALIST",
		Track: "Product/Generalist",
		Prompt: `You're the only engineer on a 5-person startup. The founder says: "Our competitor launched AI-powered search. We need it too, or we lose the fundraise. Demo to investors in 10 days."

You have:
• A working product with PostgreSQL full-text search (it works, just not "AI")
• $200/month budget for any new services
• No ML experience, but you've used OpenAI APIs before
• 10 days, no other engineering help

The situation:
• The founder wants "real AI" but can't explain what that means
• Your full-text search actually returns good results; users don't complain
• A proper vector search implementation would take 4-6 weeks to do right
• You could fake it with GPT-4 reranking results, but it would add 2-3 seconds latency`,
		Questions: []Question{
			{Name: "first_action", Label: "What do you build?", Max: 350},
			{Name: "why_first", Label: "Why this approach?", Max: 280},
			{Name: "second_action", Label: "How do you manage the founder's expectations?", Max: 350},
			{Name: "why_second", Label: "Why this communication strategy?", Max: 280},
			{Name: "third_action", Label: "What's your 10-day plan?", Max: 350},
			{Name: "signals_data_first", Label: "What do you need to understand before building?", Max: 280},
			{Name: "wont_do", Label: "What do you explicitly NOT do? Why?", Max: 450},
			{Name: "biggest_risk", Label: "Biggest risk in your approach + how you mitigate it", Max: 350},
			{Name: "verify_and_rollback", Label: "How do you demo this to investors?", Max: 350},
			{Name: "with_more_time", Label: "What would you build with 2 more months?", Max: 280},
		},
	},}
