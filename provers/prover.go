package prover

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/rs/zerolog"

	circuit "github.com/BakerStreetPhantom/zk-sha512/circuits"
	cfgtypes "github.com/BakerStreetPhantom/zk-sha512/provers/types"
	"github.com/BakerStreetPhantom/zk-sha512/types"
)

// Main entry point for the prover
func ProverMain(config *cfgtypes.Config) {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var fetcher cfgtypes.Fetcher
	switch {
	case config.RequestFile != "":
		fetcher = NewFileFetcher(config.RequestFile)
	case config.RequestURL != "":
		fetcher = NewAPIFetcher(config.RequestURL)
	default:
		log.Fatal().Msg("no request source configured, use --request or --url")
	}

	prover := NewProver(config, fetcher, log)
	if err := prover.setupCircuit(); err != nil {
		log.Fatal().Err(err).Msg("failed to setup circuit")
	}
	if err := prover.Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to run prover")
	}
}

// Prover compiles the preimage circuit once and proves fetched requests
// against it
type Prover struct {
	config  *cfgtypes.Config
	fetcher cfgtypes.Fetcher
	log     zerolog.Logger

	ccs constraint.ConstraintSystem
	pk  groth16.ProvingKey
	vk  groth16.VerifyingKey
}

// NewProver creates a new Prover with the given configuration
func NewProver(config *cfgtypes.Config, fetcher cfgtypes.Fetcher, log zerolog.Logger) *Prover {
	return &Prover{
		config:  config,
		fetcher: fetcher,
		log:     log,
	}
}

// setupCircuit compiles the circuit shape for the configured preimage size
// and generates the Groth16 keys
func (p *Prover) setupCircuit() error {
	p.log.Info().Int("preimage_size", p.config.PreimageSize).Msg("compiling circuit")

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder,
		circuit.NewSha512PreimageCircuit(p.config.PreimageSize))
	if err != nil {
		return fmt.Errorf("failed to compile circuit: %w", err)
	}
	p.ccs = ccs
	p.log.Info().Int("constraints", ccs.GetNbConstraints()).Msg("circuit compiled")

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return fmt.Errorf("failed to setup keys: %w", err)
	}
	p.pk, p.vk = pk, vk
	return nil
}

// Run fetches one request, proves it and verifies the proof
func (p *Prover) Run() error {
	request, err := p.fetcher.Request()
	if err != nil {
		return fmt.Errorf("failed to fetch request: %w", err)
	}

	// Reject requests the circuit cannot hold or that do not hash to the
	// claimed digest; an inconsistent request would only fail later inside
	// the solver.
	if len(request.Message) != p.config.PreimageSize {
		return fmt.Errorf("message is %d bytes, circuit is compiled for %d", len(request.Message), p.config.PreimageSize)
	}
	if err := request.Verify(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	p.log.Info().Str("digest", request.Digest.String()).Msg("generating proof")

	proof, err := p.generateProof(request)
	if err != nil {
		return fmt.Errorf("failed to generate proof: %w", err)
	}

	public, err := publicWitness(request)
	if err != nil {
		return err
	}
	if err := groth16.Verify(proof, p.vk, public); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}
	p.log.Info().Msg("proof verified")
	return nil
}

func (p *Prover) generateProof(request *types.ProofRequest) (groth16.Proof, error) {
	w, err := frontend.NewWitness(assignment(request), ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("failed to build witness: %w", err)
	}
	return groth16.Prove(p.ccs, p.pk, w)
}

func publicWitness(request *types.ProofRequest) (witness.Witness, error) {
	w, err := frontend.NewWitness(assignment(request), ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("failed to build witness: %w", err)
	}
	return w.Public()
}

func assignment(request *types.ProofRequest) *circuit.Sha512PreimageCircuit {
	w := circuit.NewSha512PreimageCircuit(len(request.Message))
	for i, b := range request.Message {
		w.Preimage[i] = uints.NewU8(b)
	}
	for i, b := range request.Digest {
		w.Digest[i] = uints.NewU8(b)
	}
	return w
}
