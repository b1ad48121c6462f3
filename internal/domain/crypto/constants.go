package crypto

// AlgorithmRSA identifies textbook RSA key material
const AlgorithmRSA = "RSA"

// DefaultPublicExponent is the public exponent used unless configured otherwise (F4 = 2^16 + 1)
const DefaultPublicExponent = 65537

// DefaultMillerRabinRounds is the default number of Miller-Rabin witnesses per candidate.
// 20 rounds bound the false-positive probability by 4^-20; use 40 or more for key material.
const DefaultMillerRabinRounds = 20

// DefaultMaxPrimeAttempts caps the candidate draws of a single prime search
const DefaultMaxPrimeAttempts = 20000

// DefaultMaxKeyGenAttempts caps how often a caller regenerates primes after ErrExponentNotCoprime
const DefaultMaxKeyGenAttempts = 5

// MinModulusBits is the smallest modulus size the key generator accepts (two 2-bit primes)
const MinModulusBits = 4

// ExponentiationBinary selects the left-to-right square-and-multiply backend
const ExponentiationBinary = "binary"

// ExponentiationConstantTime selects the constant-time backend
const ExponentiationConstantTime = "constant-time"

// PrimalityMillerRabin selects the plain Miller-Rabin tester
const PrimalityMillerRabin = "miller-rabin"

// PrimalityBailliePSW selects Miller-Rabin combined with a strong Lucas test
const PrimalityBailliePSW = "baillie-psw"
