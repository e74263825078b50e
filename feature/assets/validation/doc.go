// Package validation evaluates the conditional requirement rules against
// normalized candidate records.
//
// Rules are data, not branching: an ordered table of gate/check/message
// triples evaluated uniformly. The table order is fixed so a given input
// always produces the same violations in the same order:
//
//  1. identity: at least one of hostname, ip_address
//  2. structural: service_type present; port present, numeric, in range
//  3. enum membership for every field with a closed value set
//  4. credential-shape completeness for the declared or inferred kind
//  5. service-specific: database detail fields, secondary service
//     dependent fields
//
// Violations accumulate within a record: the engine never stops at the
// first failure, so one row surfaces all of its problems in one report.
// Records are independent; an invalid row never blocks the rest of the
// batch.
package validation
