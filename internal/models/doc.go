// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - User: Registered account; its ID is the member identifier used everywhere else
//   - Group: Ordered member list that owns expenses and payments
//   - Expense: One shared expense split equally among its participants
//   - Payment: A real-world payment recorded between two members
//
// Suggested settlements are not models: they are computed on demand by the
// calculator package and never stored.
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships are expressed with ID strings
// 2. **Money is decimal**: amounts use shopspring/decimal, never float64
// 3. **Timestamps are Unix seconds**, matching the storage layer
package models
