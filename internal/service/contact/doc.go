// Package contact implements contact management and lead scoring on create.
//
// The service layer contains the business rules for creating, listing,
// patching, and deleting contacts. It depends on the Repository interface
// defined in this package and should never import from api/.
//
// Repository implementations live in repository/postgres/ and repository/memory/.
package contact
