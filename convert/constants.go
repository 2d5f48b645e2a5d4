package convert

// CODATA 2018 exact values, except the Rydberg figures which are kept at the
// precision of the published NIST factor tables.
const (
	boltzmann  = 1.380649e-23    // J/K
	avogadro   = 6.02214076e23   // 1/mol
	elemCharge = 1.602176634e-19 // J per eV
	ergJoule   = 1e-7            // J per erg
	rydbergEV  = 13.6056         // eV per Ry
	rydbergErg = 2.17987e-11     // erg per Ry
	mbarCCJG   = 1e5             // J/g per Mbar-cc/g
)
