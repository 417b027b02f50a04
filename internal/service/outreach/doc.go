// Package outreach drafts personalized outreach emails with the chat model
// and hosts the contact discovery placeholder.
//
// Drafting never fails because of the model: a reply that is not JSON is
// split into subject and body, and a failed call falls back to a static
// greeting. The Draft's Source and Degraded fields tell callers which path
// produced it.
package outreach
