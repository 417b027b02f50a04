// Package interaction records touchpoints with contacts and keeps each
// contact's last_interaction and relationship_strength in step with its log.
//
// Logging an interaction runs three writes in order: insert the log, stamp
// the contact's last_interaction, then recompute relationship strength from
// every log for that contact. An unknown contact id still gets its log; the
// contact writes simply match nothing.
package interaction
