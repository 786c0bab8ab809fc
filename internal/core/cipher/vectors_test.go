package cipher

// One-time pad vectors. padKey decrypts padEncoded to padPlain and, since XOR
// is symmetric, encrypting padPlain with padKey must reproduce padEncoded
const padPlain = "On offering to help the blind man, the man who then stole his car, had not, at that precise moment,\n" +
	"  had any evil intention, quite the contrary, what he did was nothing more than obey those feelings of generosity and altruism which,\n" +
	"  as everyone knows, are the two best traits of human nature and to be found in much more hardened criminals than this one,\n" +
	"  a simple car-thief without any hope of advancing in his profession, exploited by the real owners of this enterprise,\n" +
	"  for it is they who take advantage of the needs of the poor."

const padEncoded = "IB5lCQ8tIisMDTBuLQ1RGBMMIk4pGRJpBwk5Fj5aOy07RUkQPyR1DhkhaAEzB1ADMiQMWT4TNyUd" +
	"SiEiKHkVABhaTQE3NGY2CwRIeSwhZSA8FTVtLiUdPzcvAG8wMycJGC9IcExQJzEhaBQjFngoLRwJ" +
	"UDUCJi8XJhAdFEl-Ej4dIAFXFDY_fC8JDx8eNTUYX1gcDSQWVQErezYnLX4eARFAFx86Hz42EUoI" +
	"HBc4WAQPFAhANjsRHU0iLBckPngACwkBOg8MNVkfK2UVFiQ8ERUKCgQ0dgcIPXAlHwwfFyU2GmYx" +
	"EgE1K2pXR3YQCn8rPwoEKQobCGUxKj8BC0Z9Kxw5bjY8EFIOGDFxOi0hPmofAhYsIBJXOBdPJjgH" +
	"IyFZBykGLCo3TigHDmosJnkqE30cOhwlL3o0MncsAz8xeQUzEyR1EioCNC0WIzVuOzEAFTU2CB8Y" +
	"eTYzFBh9Nw82GnMFGA5qS3F5LnYHCzMpHyNyPiwkXQY2ODAvSDk1PBo0OSdOPgAoWiMhOw5lCylA" +
	"OT0TNw4-Ow8iYyE1bxAtJmcaKxg8NBgxEQwcf0YkPxMiACYkJjtJBANNDgYzQCEWJC9CFSUOLzwD" +
	"biopeBUEGCJVFTwaCiIvByg4Jm1lcEEWMjF1IBNEBDRUJQMAA38eIwFQNTsqNWMqMycXHyc2IABz" +
	"LShSFyURdTAvIgAtRhclZgQdKHwBFxY_Wg=="

const padKey = "opEfiKGYecWNYbqpv`Rn]qwIeePxZzVLUiidWAUcxOHv[hpwZAbyMgXIxjIK[YvajvmiVPFXdpdY" +
	"MUETTtAM^Wx\\^\\eO]\\Jlv[dzlpOPEHuMoXM[uep\\lRJyRyrze^cKtTdw`^Z\\LfaklTGasxkeEbui" +
	"N[RNI^i`b`ypNwWXvjese]xpguf`YYtdmVDxW[XfnlmSakFypMErsJYczycpMVffYPDsxmbLEwFF" +
	"zhVCF]gVqy_NIovPeumEZDPvxj]Jn\\NBTurzo^QXHRJJkpwETawWqoNMjBOyiHrYXRnIijJXIYHv" +
	"]zUiKKZ]\\WAv\\YYh\\aAUzKpPHxFQNXCix\\XiskYB[uv]Cg_iSjvkFAQYOVtb^YsFR]MVpr^QUIhN" +
	"\\Hr[LSn_nQzKNKkEdO`XYeV`]RaECH[OxDUGjYwZQkBxcrSfAGcNoOPC_ifzmznV`SsECbzR`JNp" +
	"NEOXalqQupRnoP_uAKCAoPap]CUIgdmGtQkez_iKnpAZAPCKWQvqSWGeSBNrcMtU^JGd^fxCFpuM" +
	"\\qxyMt"
