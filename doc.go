// Package legacyguard implements the core of Legacy Guardian, a three-level
// personal-finance game. The player grows an inheritance of $10,000 through
// levels of increasing freedom, each one unlocking the next tool of personal
// investing.
//
// The levels are:
//   - Savings Vault: fixed-term deposits on a single principal, simple
//     interest, until the principal reaches the level goal.
//   - First Trade: buying and selling one stock against a scripted price
//     table, where every trade costs a day.
//   - Legacy Portfolio: free trading over the whole asset catalog, with
//     scripted market events and an investment coach.
//
// The package holds the sessions, the market data and the per-level rules.
// The HTTP surface lives in the server package, the coaching heuristics and
// the Gemini integration in the advisor package, and the terminal client in
// the cmd package, all assembled by the `guardian` command-line tool.
package legacyguard
