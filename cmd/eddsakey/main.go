package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/mahdiidarabi/eddsa/internal/keyio"
	"github.com/mahdiidarabi/eddsa/pkg/eddsa"
)

func main() {
	var (
		curve   = flag.String("curve", "ed25519", "Curve to use (ed25519 or ed448)")
		keygen  = flag.Bool("keygen", false, "Generate a key pair")
		sign    = flag.Bool("sign", false, "Sign a message file")
		verify  = flag.Bool("verify", false, "Verify a signature over a message file")
		keyFile = flag.String("key", "", "Path to the private seed file (hex)")
		pubFile = flag.String("pub", "", "Path to the public key file (hex)")
		msgFile = flag.String("msg", "", "Path to the message file (raw bytes)")
		sigFile = flag.String("sig", "", "Path to the signature file (hex)")
	)
	flag.Parse()

	gen, err := keyio.GeneratorByName(*curve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *keygen {
		if *keyFile == "" || *pubFile == "" {
			fmt.Fprintf(os.Stderr, "Error: --keygen requires --key and --pub\n")
			flag.Usage()
			os.Exit(1)
		}

		priv, err := eddsa.GenerateKey(gen, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := keyio.WriteHexFile(*keyFile, priv.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := keyio.WriteHexFile(*pubFile, priv.PublicKey().Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("[+] Generated %s key pair:\n", gen.Curve().Name)
		fmt.Printf("    Seed file:  %s\n", *keyFile)
		fmt.Printf("    Public key: %s\n", hex.EncodeToString(priv.PublicKey().Bytes()))
		fmt.Printf("    Written to: %s\n", *pubFile)

	} else if *sign {
		if *keyFile == "" || *msgFile == "" || *sigFile == "" {
			fmt.Fprintf(os.Stderr, "Error: --sign requires --key, --msg and --sig\n")
			flag.Usage()
			os.Exit(1)
		}

		priv, err := keyio.LoadPrivateKey(gen, *keyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		message, err := os.ReadFile(*msgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", *msgFile, err)
			os.Exit(1)
		}

		signature := priv.Sign(message)
		if err := keyio.WriteHexFile(*sigFile, signature); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("[+] Signed %d-byte message with %s:\n", len(message), gen.Curve().Name)
		fmt.Printf("    Signature:  %s\n", hex.EncodeToString(signature))
		fmt.Printf("    Written to: %s\n", *sigFile)

	} else if *verify {
		if *pubFile == "" || *msgFile == "" || *sigFile == "" {
			fmt.Fprintf(os.Stderr, "Error: --verify requires --pub, --msg and --sig\n")
			flag.Usage()
			os.Exit(1)
		}

		pub, err := keyio.LoadPublicKey(gen, *pubFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		message, err := os.ReadFile(*msgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", *msgFile, err)
			os.Exit(1)
		}
		signature, err := keyio.ReadHexFile(*sigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := pub.Verify(message, signature); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[+] Signature is valid (%s, %d-byte message)\n", gen.Curve().Name, len(message))

	} else {
		fmt.Fprintf(os.Stderr, "Error: Must specify --keygen, --sign, or --verify\n")
		flag.Usage()
		os.Exit(1)
	}
}
