// Package staff contains the employee directory: the Employee aggregate with
// its role assignments and access account, plus the Role and Department
// entities. The package enforces the single-principal-role rule: an employee
// holds at most one principal role at any time.
package staff
