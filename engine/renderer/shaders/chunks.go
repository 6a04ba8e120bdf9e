// package shaders holds the GLSL chunk library and the built-in shader
// catalog the program cache assembles sources from. Chunks are keyed by
// name and spliced into vertex/fragment templates; the feature preamble
// (#define lines) is prepended by the program cache.
package shaders

// Chunk returns the named GLSL chunk, or an empty string for unknown names.
func Chunk(name string) string {
	return chunks[name]
}

var chunks = map[string]string{

	// --- shared fragment helpers ---

	"alphatest_fragment": `
#ifdef ALPHATEST
	if ( gl_FragColor.a < ALPHATEST ) discard;
#endif
`,

	"linear_to_gamma_fragment": `
#ifdef GAMMA_OUTPUT
	gl_FragColor.xyz = sqrt( gl_FragColor.xyz );
#endif
`,

	// --- fog ---

	"fog_pars_fragment": `
#ifdef USE_FOG
	uniform vec3 fogColor;
	#ifdef FOG_EXP2
		uniform float fogDensity;
	#else
		uniform float fogNear;
		uniform float fogFar;
	#endif
#endif
`,

	"fog_fragment": `
#ifdef USE_FOG
	float depth = gl_FragCoord.z / gl_FragCoord.w;
	#ifdef FOG_EXP2
		const float LOG2 = 1.442695;
		float fogFactor = exp2( - fogDensity * fogDensity * depth * depth * LOG2 );
		fogFactor = 1.0 - clamp( fogFactor, 0.0, 1.0 );
	#else
		float fogFactor = smoothstep( fogNear, fogFar, depth );
	#endif
	gl_FragColor = mix( gl_FragColor, vec4( fogColor, gl_FragColor.w ), fogFactor );
#endif
`,

	// --- diffuse map ---

	"map_pars_vertex": `
#ifdef USE_MAP
	varying vec2 vUv;
	uniform vec4 offsetRepeat;
#endif
`,

	"map_vertex": `
#ifdef USE_MAP
	vUv = uv * offsetRepeat.zw + offsetRepeat.xy;
#endif
`,

	"map_pars_fragment": `
#ifdef USE_MAP
	varying vec2 vUv;
	uniform sampler2D map;
#endif
`,

	"map_fragment": `
#ifdef USE_MAP
	gl_FragColor = gl_FragColor * texture2D( map, vUv );
#endif
`,

	// --- light map (second UV set) ---

	"lightmap_pars_vertex": `
#ifdef USE_LIGHTMAP
	varying vec2 vUv2;
#endif
`,

	"lightmap_vertex": `
#ifdef USE_LIGHTMAP
	vUv2 = uv2;
#endif
`,

	"lightmap_pars_fragment": `
#ifdef USE_LIGHTMAP
	varying vec2 vUv2;
	uniform sampler2D lightMap;
#endif
`,

	"lightmap_fragment": `
#ifdef USE_LIGHTMAP
	gl_FragColor = gl_FragColor * texture2D( lightMap, vUv2 );
#endif
`,

	// --- specular map ---

	"specularmap_pars_fragment": `
#ifdef USE_SPECULARMAP
	uniform sampler2D specularMap;
#endif
`,

	"specularmap_fragment": `
float specularStrength;
#ifdef USE_SPECULARMAP
	vec4 texelSpecular = texture2D( specularMap, vUv );
	specularStrength = texelSpecular.r;
#else
	specularStrength = 1.0;
#endif
`,

	// --- environment map ---

	"envmap_pars_vertex": `
#ifdef USE_ENVMAP
	varying vec3 vReflect;
	uniform float refractionRatio;
	uniform bool useRefract;
#endif
`,

	"envmap_vertex": `
#ifdef USE_ENVMAP
	vec4 mWorldPosition = modelMatrix * vec4( position, 1.0 );
	vec3 nWorld = mat3( modelMatrix[ 0 ].xyz, modelMatrix[ 1 ].xyz, modelMatrix[ 2 ].xyz ) * normal;
	vec3 cameraToVertex = normalize( mWorldPosition.xyz - cameraPosition );
	if ( useRefract ) {
		vReflect = refract( cameraToVertex, normalize( nWorld ), refractionRatio );
	} else {
		vReflect = reflect( cameraToVertex, normalize( nWorld ) );
	}
#endif
`,

	"envmap_pars_fragment": `
#ifdef USE_ENVMAP
	varying vec3 vReflect;
	uniform float reflectivity;
	uniform samplerCube envMap;
	uniform float flipEnvMap;
	uniform int combine;
#endif
`,

	"envmap_fragment": `
#ifdef USE_ENVMAP
	vec4 cubeColor = textureCube( envMap, vec3( flipEnvMap * vReflect.x, vReflect.yz ) );
	#ifdef GAMMA_INPUT
		cubeColor.xyz *= cubeColor.xyz;
	#endif
	if ( combine == 1 ) {
		gl_FragColor.xyz = mix( gl_FragColor.xyz, cubeColor.xyz, specularStrength * reflectivity );
	} else if ( combine == 2 ) {
		gl_FragColor.xyz += cubeColor.xyz * specularStrength * reflectivity;
	} else {
		gl_FragColor.xyz = mix( gl_FragColor.xyz, gl_FragColor.xyz * cubeColor.xyz, specularStrength * reflectivity );
	}
#endif
`,

	// --- vertex colors ---

	"color_pars_vertex": `
#ifdef USE_COLOR
	varying vec3 vColor;
#endif
`,

	"color_vertex": `
#ifdef USE_COLOR
	#ifdef GAMMA_INPUT
		vColor = color * color;
	#else
		vColor = color;
	#endif
#endif
`,

	"color_pars_fragment": `
#ifdef USE_COLOR
	varying vec3 vColor;
#endif
`,

	"color_fragment": `
#ifdef USE_COLOR
	gl_FragColor = gl_FragColor * vec4( vColor, 1.0 );
#endif
`,

	// --- morph targets ---

	"morphtarget_pars_vertex": `
#ifdef USE_MORPHTARGETS
	#ifndef USE_MORPHNORMALS
		uniform float morphTargetInfluences[ 8 ];
		attribute vec3 morphTarget4;
		attribute vec3 morphTarget5;
		attribute vec3 morphTarget6;
		attribute vec3 morphTarget7;
	#else
		uniform float morphTargetInfluences[ 4 ];
		attribute vec3 morphNormal0;
		attribute vec3 morphNormal1;
		attribute vec3 morphNormal2;
		attribute vec3 morphNormal3;
	#endif
	attribute vec3 morphTarget0;
	attribute vec3 morphTarget1;
	attribute vec3 morphTarget2;
	attribute vec3 morphTarget3;
#endif
`,

	"morphtarget_vertex": `
#ifdef USE_MORPHTARGETS
	vec3 morphed = vec3( 0.0 );
	morphed += ( morphTarget0 - position ) * morphTargetInfluences[ 0 ];
	morphed += ( morphTarget1 - position ) * morphTargetInfluences[ 1 ];
	morphed += ( morphTarget2 - position ) * morphTargetInfluences[ 2 ];
	morphed += ( morphTarget3 - position ) * morphTargetInfluences[ 3 ];
	#ifndef USE_MORPHNORMALS
		morphed += ( morphTarget4 - position ) * morphTargetInfluences[ 4 ];
		morphed += ( morphTarget5 - position ) * morphTargetInfluences[ 5 ];
		morphed += ( morphTarget6 - position ) * morphTargetInfluences[ 6 ];
		morphed += ( morphTarget7 - position ) * morphTargetInfluences[ 7 ];
	#endif
	morphed += position;
#endif
`,

	"morphnormal_vertex": `
#ifdef USE_MORPHNORMALS
	vec3 morphedNormal = vec3( 0.0 );
	morphedNormal += ( morphNormal0 - normal ) * morphTargetInfluences[ 0 ];
	morphedNormal += ( morphNormal1 - normal ) * morphTargetInfluences[ 1 ];
	morphedNormal += ( morphNormal2 - normal ) * morphTargetInfluences[ 2 ];
	morphedNormal += ( morphNormal3 - normal ) * morphTargetInfluences[ 3 ];
	morphedNormal += normal;
#endif
`,

	// --- skinning ---

	"skinning_pars_vertex": `
#ifdef USE_SKINNING
	uniform mat4 boneGlobalMatrices[ MAX_BONES ];
	attribute vec4 skinIndex;
	attribute vec4 skinWeight;
#endif
`,

	"skinbase_vertex": `
#ifdef USE_SKINNING
	mat4 boneMatX = boneGlobalMatrices[ int( skinIndex.x ) ];
	mat4 boneMatY = boneGlobalMatrices[ int( skinIndex.y ) ];
	mat4 boneMatZ = boneGlobalMatrices[ int( skinIndex.z ) ];
	mat4 boneMatW = boneGlobalMatrices[ int( skinIndex.w ) ];
#endif
`,

	"skinning_vertex": `
#ifdef USE_SKINNING
	#ifdef USE_MORPHTARGETS
		vec4 skinVertex = vec4( morphed, 1.0 );
	#else
		vec4 skinVertex = vec4( position, 1.0 );
	#endif
	vec4 skinned = boneMatX * skinVertex * skinWeight.x;
	skinned += boneMatY * skinVertex * skinWeight.y;
	skinned += boneMatZ * skinVertex * skinWeight.z;
	skinned += boneMatW * skinVertex * skinWeight.w;
#endif
`,

	"skinnormal_vertex": `
#ifdef USE_SKINNING
	mat4 skinMatrix = skinWeight.x * boneMatX;
	skinMatrix += skinWeight.y * boneMatY;
	skinMatrix += skinWeight.z * boneMatZ;
	skinMatrix += skinWeight.w * boneMatW;
	#ifdef USE_MORPHNORMALS
		vec4 skinnedNormal = skinMatrix * vec4( morphedNormal, 0.0 );
	#else
		vec4 skinnedNormal = skinMatrix * vec4( normal, 0.0 );
	#endif
#endif
`,

	// --- default position/normal plumbing ---

	"defaultnormal_vertex": `
vec3 objectNormal;
#ifdef USE_SKINNING
	objectNormal = skinnedNormal.xyz;
#elif defined( USE_MORPHNORMALS )
	objectNormal = morphedNormal;
#else
	objectNormal = normal;
#endif
#ifdef FLIP_SIDED
	objectNormal = -objectNormal;
#endif
vec3 transformedNormal = normalMatrix * objectNormal;
`,

	"default_vertex": `
vec4 mvPosition;
#ifdef USE_SKINNING
	mvPosition = modelViewMatrix * skinned;
#elif defined( USE_MORPHTARGETS )
	mvPosition = modelViewMatrix * vec4( morphed, 1.0 );
#else
	mvPosition = modelViewMatrix * vec4( position, 1.0 );
#endif
gl_Position = projectionMatrix * mvPosition;
`,

	// --- lambert lighting (per vertex) ---

	"lights_lambert_pars_vertex": `
uniform vec3 ambient;
uniform vec3 diffuse;
uniform vec3 emissive;
uniform vec3 ambientLightColor;
#if MAX_DIR_LIGHTS > 0
	uniform vec3 directionalLightColor[ MAX_DIR_LIGHTS ];
	uniform vec3 directionalLightDirection[ MAX_DIR_LIGHTS ];
#endif
#if MAX_HEMI_LIGHTS > 0
	uniform vec3 hemisphereLightSkyColor[ MAX_HEMI_LIGHTS ];
	uniform vec3 hemisphereLightGroundColor[ MAX_HEMI_LIGHTS ];
	uniform vec3 hemisphereLightPosition[ MAX_HEMI_LIGHTS ];
#endif
#if MAX_POINT_LIGHTS > 0
	uniform vec3 pointLightColor[ MAX_POINT_LIGHTS ];
	uniform vec3 pointLightPosition[ MAX_POINT_LIGHTS ];
	uniform float pointLightDistance[ MAX_POINT_LIGHTS ];
#endif
#if MAX_SPOT_LIGHTS > 0
	uniform vec3 spotLightColor[ MAX_SPOT_LIGHTS ];
	uniform vec3 spotLightPosition[ MAX_SPOT_LIGHTS ];
	uniform vec3 spotLightDirection[ MAX_SPOT_LIGHTS ];
	uniform float spotLightDistance[ MAX_SPOT_LIGHTS ];
	uniform float spotLightAngleCos[ MAX_SPOT_LIGHTS ];
	uniform float spotLightExponent[ MAX_SPOT_LIGHTS ];
#endif
#ifdef WRAP_AROUND
	uniform vec3 wrapRGB;
#endif
`,

	"lights_lambert_vertex": `
vLightFront = vec3( 0.0 );
#ifdef DOUBLE_SIDED
	vLightBack = vec3( 0.0 );
#endif
transformedNormal = normalize( transformedNormal );
#if MAX_DIR_LIGHTS > 0
for ( int i = 0; i < MAX_DIR_LIGHTS; i ++ ) {
	vec4 lDirection = viewMatrix * vec4( directionalLightDirection[ i ], 0.0 );
	vec3 dirVector = normalize( lDirection.xyz );
	float dotProduct = dot( transformedNormal, dirVector );
	vec3 directionalLightWeighting = vec3( max( dotProduct, 0.0 ) );
	#ifdef DOUBLE_SIDED
		vec3 directionalLightWeightingBack = vec3( max( -dotProduct, 0.0 ) );
		#ifdef WRAP_AROUND
			vec3 directionalLightWeightingHalfBack = vec3( max( -0.5 * dotProduct + 0.5, 0.0 ) );
		#endif
	#endif
	#ifdef WRAP_AROUND
		vec3 directionalLightWeightingHalf = vec3( max( 0.5 * dotProduct + 0.5, 0.0 ) );
		directionalLightWeighting = mix( directionalLightWeighting, directionalLightWeightingHalf, wrapRGB );
		#ifdef DOUBLE_SIDED
			directionalLightWeightingBack = mix( directionalLightWeightingBack, directionalLightWeightingHalfBack, wrapRGB );
		#endif
	#endif
	vLightFront += directionalLightColor[ i ] * directionalLightWeighting;
	#ifdef DOUBLE_SIDED
		vLightBack += directionalLightColor[ i ] * directionalLightWeightingBack;
	#endif
}
#endif
#if MAX_POINT_LIGHTS > 0
for ( int i = 0; i < MAX_POINT_LIGHTS; i ++ ) {
	vec4 lPosition = viewMatrix * vec4( pointLightPosition[ i ], 1.0 );
	vec3 lVector = lPosition.xyz - mvPosition.xyz;
	float lDistance = 1.0;
	if ( pointLightDistance[ i ] > 0.0 )
		lDistance = 1.0 - min( ( length( lVector ) / pointLightDistance[ i ] ), 1.0 );
	lVector = normalize( lVector );
	float dotProduct = dot( transformedNormal, lVector );
	vec3 pointLightWeighting = vec3( max( dotProduct, 0.0 ) );
	#ifdef DOUBLE_SIDED
		vec3 pointLightWeightingBack = vec3( max( -dotProduct, 0.0 ) );
	#endif
	vLightFront += pointLightColor[ i ] * pointLightWeighting * lDistance;
	#ifdef DOUBLE_SIDED
		vLightBack += pointLightColor[ i ] * pointLightWeightingBack * lDistance;
	#endif
}
#endif
#if MAX_SPOT_LIGHTS > 0
for ( int i = 0; i < MAX_SPOT_LIGHTS; i ++ ) {
	vec4 lPosition = viewMatrix * vec4( spotLightPosition[ i ], 1.0 );
	vec3 lVector = lPosition.xyz - mvPosition.xyz;
	vec3 lWorldVector = normalize( spotLightPosition[ i ] - mWorldPosition.xyz );
	float spotEffect = dot( spotLightDirection[ i ], lWorldVector );
	if ( spotEffect > spotLightAngleCos[ i ] ) {
		spotEffect = max( pow( spotEffect, spotLightExponent[ i ] ), 0.0 );
		float lDistance = 1.0;
		if ( spotLightDistance[ i ] > 0.0 )
			lDistance = 1.0 - min( ( length( lVector ) / spotLightDistance[ i ] ), 1.0 );
		lVector = normalize( lVector );
		float dotProduct = dot( transformedNormal, lVector );
		vLightFront += spotLightColor[ i ] * vec3( max( dotProduct, 0.0 ) ) * lDistance * spotEffect;
		#ifdef DOUBLE_SIDED
			vLightBack += spotLightColor[ i ] * vec3( max( -dotProduct, 0.0 ) ) * lDistance * spotEffect;
		#endif
	}
}
#endif
#if MAX_HEMI_LIGHTS > 0
for ( int i = 0; i < MAX_HEMI_LIGHTS; i ++ ) {
	vec4 lPosition = viewMatrix * vec4( hemisphereLightPosition[ i ], 1.0 );
	vec3 lVector = normalize( lPosition.xyz - mvPosition.xyz );
	float dotProduct = dot( transformedNormal, lVector );
	float hemiDiffuseWeight = 0.5 * dotProduct + 0.5;
	vLightFront += mix( hemisphereLightGroundColor[ i ], hemisphereLightSkyColor[ i ], hemiDiffuseWeight );
	#ifdef DOUBLE_SIDED
		float hemiDiffuseWeightBack = -0.5 * dotProduct + 0.5;
		vLightBack += mix( hemisphereLightGroundColor[ i ], hemisphereLightSkyColor[ i ], hemiDiffuseWeightBack );
	#endif
}
#endif
vLightFront = vLightFront * diffuse + ambient * ambientLightColor + emissive;
#ifdef DOUBLE_SIDED
	vLightBack = vLightBack * diffuse + ambient * ambientLightColor + emissive;
#endif
`,

	// --- phong lighting (per pixel) ---

	"lights_phong_pars_vertex": `
#ifndef PHONG_PER_PIXEL
#if MAX_POINT_LIGHTS > 0
	uniform vec3 pointLightPosition[ MAX_POINT_LIGHTS ];
	uniform float pointLightDistance[ MAX_POINT_LIGHTS ];
	varying vec4 vPointLight[ MAX_POINT_LIGHTS ];
#endif
#if MAX_SPOT_LIGHTS > 0
	uniform vec3 spotLightPosition[ MAX_SPOT_LIGHTS ];
	uniform float spotLightDistance[ MAX_SPOT_LIGHTS ];
	varying vec4 vSpotLight[ MAX_SPOT_LIGHTS ];
#endif
#endif
#if MAX_SPOT_LIGHTS > 0 || defined( USE_ENVMAP )
	varying vec3 vWorldPosition;
#endif
`,

	"lights_phong_vertex": `
#ifndef PHONG_PER_PIXEL
#if MAX_POINT_LIGHTS > 0
for ( int i = 0; i < MAX_POINT_LIGHTS; i ++ ) {
	vec4 lPosition = viewMatrix * vec4( pointLightPosition[ i ], 1.0 );
	vec3 lVector = lPosition.xyz - mvPosition.xyz;
	float lDistance = 1.0;
	if ( pointLightDistance[ i ] > 0.0 )
		lDistance = 1.0 - min( ( length( lVector ) / pointLightDistance[ i ] ), 1.0 );
	vPointLight[ i ] = vec4( lVector, lDistance );
}
#endif
#if MAX_SPOT_LIGHTS > 0
for ( int i = 0; i < MAX_SPOT_LIGHTS; i ++ ) {
	vec4 lPosition = viewMatrix * vec4( spotLightPosition[ i ], 1.0 );
	vec3 lVector = lPosition.xyz - mvPosition.xyz;
	float lDistance = 1.0;
	if ( spotLightDistance[ i ] > 0.0 )
		lDistance = 1.0 - min( ( length( lVector ) / spotLightDistance[ i ] ), 1.0 );
	vSpotLight[ i ] = vec4( lVector, lDistance );
}
#endif
#endif
#if MAX_SPOT_LIGHTS > 0 || defined( USE_ENVMAP )
	vWorldPosition = mWorldPosition.xyz;
#endif
`,

	"lights_phong_pars_fragment": `
uniform vec3 ambientLightColor;
#if MAX_DIR_LIGHTS > 0
	uniform vec3 directionalLightColor[ MAX_DIR_LIGHTS ];
	uniform vec3 directionalLightDirection[ MAX_DIR_LIGHTS ];
#endif
#if MAX_HEMI_LIGHTS > 0
	uniform vec3 hemisphereLightSkyColor[ MAX_HEMI_LIGHTS ];
	uniform vec3 hemisphereLightGroundColor[ MAX_HEMI_LIGHTS ];
	uniform vec3 hemisphereLightPosition[ MAX_HEMI_LIGHTS ];
#endif
#if MAX_POINT_LIGHTS > 0
	uniform vec3 pointLightColor[ MAX_POINT_LIGHTS ];
	#ifdef PHONG_PER_PIXEL
		uniform vec3 pointLightPosition[ MAX_POINT_LIGHTS ];
		uniform float pointLightDistance[ MAX_POINT_LIGHTS ];
	#else
		varying vec4 vPointLight[ MAX_POINT_LIGHTS ];
	#endif
#endif
#if MAX_SPOT_LIGHTS > 0
	uniform vec3 spotLightColor[ MAX_SPOT_LIGHTS ];
	uniform vec3 spotLightDirection[ MAX_SPOT_LIGHTS ];
	uniform float spotLightAngleCos[ MAX_SPOT_LIGHTS ];
	uniform float spotLightExponent[ MAX_SPOT_LIGHTS ];
	#ifdef PHONG_PER_PIXEL
		uniform vec3 spotLightPosition[ MAX_SPOT_LIGHTS ];
		uniform float spotLightDistance[ MAX_SPOT_LIGHTS ];
	#else
		varying vec4 vSpotLight[ MAX_SPOT_LIGHTS ];
	#endif
#endif
#if MAX_SPOT_LIGHTS > 0 || defined( USE_ENVMAP )
	varying vec3 vWorldPosition;
#endif
#ifdef WRAP_AROUND
	uniform vec3 wrapRGB;
#endif
varying vec3 vViewPosition;
varying vec3 vNormal;
`,

	"lights_phong_fragment": `
vec3 normal = normalize( vNormal );
vec3 viewPosition = normalize( vViewPosition );
#ifdef DOUBLE_SIDED
	normal = normal * ( -1.0 + 2.0 * float( gl_FrontFacing ) );
#endif
#ifdef USE_BUMPMAP
	normal = perturbNormalArb( -vViewPosition, normal, dHdxy_fwd() );
#endif
vec3 totalDiffuse = vec3( 0.0 );
vec3 totalSpecular = vec3( 0.0 );
#if MAX_POINT_LIGHTS > 0
	for ( int i = 0; i < MAX_POINT_LIGHTS; i ++ ) {
		#ifdef PHONG_PER_PIXEL
			vec4 lPosition = viewMatrix * vec4( pointLightPosition[ i ], 1.0 );
			vec3 lVector = lPosition.xyz + vViewPosition.xyz;
			float lDistance = 1.0;
			if ( pointLightDistance[ i ] > 0.0 )
				lDistance = 1.0 - min( ( length( lVector ) / pointLightDistance[ i ] ), 1.0 );
			lVector = normalize( lVector );
		#else
			vec3 lVector = normalize( vPointLight[ i ].xyz );
			float lDistance = vPointLight[ i ].w;
		#endif
		float dotProduct = dot( normal, lVector );
		#ifdef WRAP_AROUND
			float pointDiffuseWeightFull = max( dotProduct, 0.0 );
			float pointDiffuseWeightHalf = max( 0.5 * dotProduct + 0.5, 0.0 );
			vec3 pointDiffuseWeight = mix( vec3 ( pointDiffuseWeightFull ), vec3( pointDiffuseWeightHalf ), wrapRGB );
		#else
			float pointDiffuseWeight = max( dotProduct, 0.0 );
		#endif
		totalDiffuse += diffuse * pointLightColor[ i ] * pointDiffuseWeight * lDistance;
		vec3 pointHalfVector = normalize( lVector + viewPosition );
		float pointDotNormalHalf = max( dot( normal, pointHalfVector ), 0.0 );
		float pointSpecularWeight = specularStrength * max( pow( pointDotNormalHalf, shininess ), 0.0 );
		totalSpecular += specular * pointLightColor[ i ] * pointSpecularWeight * pointDiffuseWeight * lDistance;
	}
#endif
#if MAX_SPOT_LIGHTS > 0
	for ( int i = 0; i < MAX_SPOT_LIGHTS; i ++ ) {
		#ifdef PHONG_PER_PIXEL
			vec4 lPosition = viewMatrix * vec4( spotLightPosition[ i ], 1.0 );
			vec3 lVector = lPosition.xyz + vViewPosition.xyz;
			float lDistance = 1.0;
			if ( spotLightDistance[ i ] > 0.0 )
				lDistance = 1.0 - min( ( length( lVector ) / spotLightDistance[ i ] ), 1.0 );
			lVector = normalize( lVector );
		#else
			vec3 lVector = normalize( vSpotLight[ i ].xyz );
			float lDistance = vSpotLight[ i ].w;
		#endif
		float spotEffect = dot( spotLightDirection[ i ], normalize( spotLightPosition[ i ] - vWorldPosition ) );
		if ( spotEffect > spotLightAngleCos[ i ] ) {
			spotEffect = max( pow( spotEffect, spotLightExponent[ i ] ), 0.0 );
			float dotProduct = dot( normal, lVector );
			float spotDiffuseWeight = max( dotProduct, 0.0 );
			totalDiffuse += diffuse * spotLightColor[ i ] * spotDiffuseWeight * lDistance * spotEffect;
			vec3 spotHalfVector = normalize( lVector + viewPosition );
			float spotDotNormalHalf = max( dot( normal, spotHalfVector ), 0.0 );
			float spotSpecularWeight = specularStrength * max( pow( spotDotNormalHalf, shininess ), 0.0 );
			totalSpecular += specular * spotLightColor[ i ] * spotSpecularWeight * spotDiffuseWeight * lDistance * spotEffect;
		}
	}
#endif
#if MAX_DIR_LIGHTS > 0
	for ( int i = 0; i < MAX_DIR_LIGHTS; i ++ ) {
		vec4 lDirection = viewMatrix * vec4( directionalLightDirection[ i ], 0.0 );
		vec3 dirVector = normalize( lDirection.xyz );
		float dotProduct = dot( normal, dirVector );
		#ifdef WRAP_AROUND
			float dirDiffuseWeightFull = max( dotProduct, 0.0 );
			float dirDiffuseWeightHalf = max( 0.5 * dotProduct + 0.5, 0.0 );
			vec3 dirDiffuseWeight = mix( vec3( dirDiffuseWeightFull ), vec3( dirDiffuseWeightHalf ), wrapRGB );
		#else
			float dirDiffuseWeight = max( dotProduct, 0.0 );
		#endif
		totalDiffuse += diffuse * directionalLightColor[ i ] * dirDiffuseWeight;
		vec3 dirHalfVector = normalize( dirVector + viewPosition );
		float dirDotNormalHalf = max( dot( normal, dirHalfVector ), 0.0 );
		float dirSpecularWeight = specularStrength * max( pow( dirDotNormalHalf, shininess ), 0.0 );
		totalSpecular += specular * directionalLightColor[ i ] * dirSpecularWeight * dirDiffuseWeight;
	}
#endif
#if MAX_HEMI_LIGHTS > 0
	for ( int i = 0; i < MAX_HEMI_LIGHTS; i ++ ) {
		vec4 lPosition = viewMatrix * vec4( hemisphereLightPosition[ i ], 1.0 );
		vec3 lVector = normalize( lPosition.xyz - vViewPosition.xyz );
		float dotProduct = dot( normal, lVector );
		float hemiDiffuseWeight = 0.5 * dotProduct + 0.5;
		totalDiffuse += diffuse * mix( hemisphereLightGroundColor[ i ], hemisphereLightSkyColor[ i ], hemiDiffuseWeight );
	}
#endif
#ifdef METAL
	gl_FragColor.xyz = gl_FragColor.xyz * ( emissive + totalDiffuse + ambientLightColor * ambient + totalSpecular );
#else
	gl_FragColor.xyz = gl_FragColor.xyz * ( emissive + totalDiffuse + ambientLightColor * ambient ) + totalSpecular;
#endif
`,

	// --- bump mapping via standard derivatives ---

	"bumpmap_pars_fragment": `
#ifdef USE_BUMPMAP
	uniform sampler2D bumpMap;
	uniform float bumpScale;
	vec2 dHdxy_fwd() {
		vec2 dSTdx = dFdx( vUv );
		vec2 dSTdy = dFdy( vUv );
		float Hll = bumpScale * texture2D( bumpMap, vUv ).x;
		float dBx = bumpScale * texture2D( bumpMap, vUv + dSTdx ).x - Hll;
		float dBy = bumpScale * texture2D( bumpMap, vUv + dSTdy ).x - Hll;
		return vec2( dBx, dBy );
	}
	vec3 perturbNormalArb( vec3 surf_pos, vec3 surf_norm, vec2 dHdxy ) {
		vec3 vSigmaX = dFdx( surf_pos );
		vec3 vSigmaY = dFdy( surf_pos );
		vec3 vN = surf_norm;
		vec3 R1 = cross( vSigmaY, vN );
		vec3 R2 = cross( vN, vSigmaX );
		float fDet = dot( vSigmaX, R1 );
		vec3 vGrad = sign( fDet ) * ( dHdxy.x * R1 + dHdxy.y * R2 );
		return normalize( abs( fDet ) * surf_norm - vGrad );
	}
#endif
`,
}
